package htmlconv

import (
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/riverfjs/richmd-go/internal/diagram"
	"github.com/riverfjs/richmd-go/internal/document"
)

// importPolicy 导入前的 HTML 白名单
//
// 在 UGC 策略之上放行文档树需要的结构属性：
// 图表容器的 class 和标题锚点 id。
var importPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div")
	p.AllowAttrs("class").OnElements("div", "code")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}()

// Sanitize 清洗不可信的 HTML
func Sanitize(raw string) string {
	return importPolicy.Sanitize(raw)
}

// Import 把 HTML 字符串解析为文档节点序列
//
// 调用方应先过 Sanitize；解析本身对任何输入都不会 panic，
// html.Parse 按规范对残缺输入做容错修复。
func Import(raw string) ([]document.Node, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}

	body := findElement(root, "body")
	if body == nil {
		return nil, nil
	}

	return importBlocks(body), nil
}

// importBlocks 转换一个父元素下的所有子元素
//
// 块级上下文里可能混进行内内容（紧凑 li、残缺片段里的裸文本和
// <strong> 等行内元素）：连续的行内节点归拢成一个段落整体导入，
// 逐个丢给块级分发会丢掉行内元素和元素间的空白。
func importBlocks(parent *html.Node) []document.Node {
	var nodes []document.Node
	var inlineRun []*html.Node

	flush := func() {
		if len(inlineRun) == 0 {
			return
		}
		if p := inlineRunParagraph(inlineRun); p != nil {
			nodes = append(nodes, p)
		}
		inlineRun = nil
	}

	for el := parent.FirstChild; el != nil; el = el.NextSibling {
		switch {
		case isInlineLevel(el):
			inlineRun = append(inlineRun, el)

		case el.Type != html.ElementNode:
			// comments etc.

		case el.Data == "div" && !hasClass(el, "mermaid"):
			// 非图表的 div 是透明容器，子块直接上提
			flush()
			nodes = append(nodes, importBlocks(el)...)

		default:
			flush()
			if n := importBlock(el); n != nil {
				nodes = append(nodes, n)
			}
		}
	}
	flush()

	return nodes
}

// inlineRunParagraph 把一段连续的行内节点包成段落
//
// 块级元素之间的排版空白（纯空白文本、无任何行内元素）不算内容。
func inlineRunParagraph(run []*html.Node) document.Node {
	significant := false
	for _, n := range run {
		if n.Type != html.TextNode || strings.TrimSpace(n.Data) != "" {
			significant = true
			break
		}
	}
	if !significant {
		return nil
	}
	return &document.Paragraph{Content: importInlineNodes(run, markState{})}
}

// isInlineLevel 判断节点在块级上下文中是否属于行内内容
func isInlineLevel(n *html.Node) bool {
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "strong", "b", "em", "i", "code", "a", "br",
		"span", "del", "s", "u", "sub", "sup", "mark", "small", "img":
		return true
	}
	return false
}

// importBlock 转换单个块级元素，未识别类型返回 nil
func importBlock(el *html.Node) document.Node {
	switch el.Data {
	case "p":
		return &document.Paragraph{Content: importInlines(el, markState{})}

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(el.Data[1:])
		return &document.Heading{
			Level:   level,
			ID:      attrValue(el, "id"),
			Content: importInlines(el, markState{}),
		}

	case "ul":
		return &document.BulletList{Items: importListItems(el)}

	case "ol":
		return &document.OrderedList{Items: importListItems(el)}

	case "blockquote":
		return &document.Blockquote{Content: importBlocks(el)}

	case "pre":
		return importPre(el)

	case "div":
		if !hasClass(el, "mermaid") {
			return nil
		}
		source := strings.TrimSpace(textContent(el))
		return &document.DiagramBlock{
			Kind:       diagram.Classify(source),
			ViewMode:   document.ViewPreview,
			Theme:      document.ThemeDefault,
			SourceText: source,
		}

	case "table":
		return importTable(el)

	case "hr":
		return &document.HorizontalRule{}
	}

	return nil
}

// importPre <pre><code class="language-x"> → CodeBlock
func importPre(el *html.Node) document.Node {
	language := ""
	if code := findElement(el, "code"); code != nil {
		class := attrValue(code, "class")
		if strings.HasPrefix(class, "language-") {
			language = strings.TrimPrefix(class, "language-")
		}
	}

	return &document.CodeBlock{
		Language: language,
		Text:     strings.TrimSuffix(textContent(el), "\n"),
	}
}

func importListItems(el *html.Node) []*document.ListItem {
	var items []*document.ListItem
	for li := el.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		// 紧凑 li 的行内内容由 importBlocks 归拢成段落
		items = append(items, &document.ListItem{Content: importBlocks(li)})
	}
	return items
}

func importTable(el *html.Node) document.Node {
	table := &document.Table{}

	iterNodes(el, func(tr *html.Node) bool {
		if tr.Type != html.ElementNode || tr.Data != "tr" {
			return false
		}

		row := &document.TableRow{}
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.Data != "td" && td.Data != "th") {
				continue
			}
			row.Cells = append(row.Cells, &document.TableCell{
				Header:  td.Data == "th",
				Content: importInlines(td, markState{}),
			})
		}
		table.Rows = append(table.Rows, row)
		return true
	})

	if len(table.Rows) == 0 {
		return nil
	}
	return table
}

// markState 行内导入时继承的格式标记
type markState struct {
	bold   bool
	italic bool
	code   bool
}

// importInlines 转换一个元素下的行内内容
func importInlines(parent *html.Node, marks markState) []document.Node {
	var children []*html.Node
	for el := parent.FirstChild; el != nil; el = el.NextSibling {
		children = append(children, el)
	}
	return importInlineNodes(children, marks)
}

// importInlineNodes 转换一组行内节点
func importInlineNodes(els []*html.Node, marks markState) []document.Node {
	var nodes []document.Node

	for _, el := range els {
		switch {
		case el.Type == html.TextNode:
			if el.Data != "" {
				nodes = append(nodes, &document.TextRun{
					Text:   el.Data,
					Bold:   marks.bold,
					Italic: marks.italic,
					Code:   marks.code,
				})
			}

		case el.Type != html.ElementNode:
			// comments etc.

		case el.Data == "strong" || el.Data == "b":
			inner := marks
			inner.bold = true
			nodes = append(nodes, importInlines(el, inner)...)

		case el.Data == "em" || el.Data == "i":
			inner := marks
			inner.italic = true
			nodes = append(nodes, importInlines(el, inner)...)

		case el.Data == "code":
			inner := marks
			inner.code = true
			nodes = append(nodes, importInlines(el, inner)...)

		case el.Data == "a":
			nodes = append(nodes, &document.Link{
				Href:    attrValue(el, "href"),
				Content: importInlines(el, marks),
			})

		case el.Data == "br":
			nodes = append(nodes, &document.HardBreak{})

		default:
			// span、del 等未建模的行内元素：透传文本
			nodes = append(nodes, importInlines(el, marks)...)
		}
	}

	return nodes
}

// --- DOM helpers ---

func iterNodes(node *html.Node, f func(child *html.Node) bool) {
	if f(node) {
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		iterNodes(c, f)
	}
}

func findElement(root *html.Node, tagName string) *html.Node {
	var found *html.Node
	iterNodes(root, func(child *html.Node) bool {
		if found == nil && child.Type == html.ElementNode && child.Data == tagName {
			found = child
			return true
		}
		return false
	})
	return found
}

func attrValue(el *html.Node, key string) string {
	for _, attr := range el.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasClass(el *html.Node, name string) bool {
	for _, class := range strings.Fields(attrValue(el, "class")) {
		if class == name {
			return true
		}
	}
	return false
}

func textContent(el *html.Node) string {
	var sb strings.Builder
	iterNodes(el, func(child *html.Node) bool {
		if child.Type == html.TextNode {
			sb.WriteString(child.Data)
		}
		return false
	})
	return sb.String()
}
