// Package converter 实现标准 Markdown 到文档树的转换
//
// 基于 goldmark AST 的直接构造路径：解析非图表文本片段，
// 递归地把 AST 块级/行内节点映射为文档节点。
// 图表段永远不会经过这里，编排层在扫描阶段就把它们摘出去了。
package converter

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/richmd-go/internal/document"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// Convert 把标准 Markdown 文本转换为文档节点序列
//
// 返回的是森林而非单根：结果会被拼接进既有文档的选区位置。
func Convert(markdown string) []document.Node {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	root := md.Parser().Parse(text.NewReader(source))
	return convertBlocks(root, source)
}

// RenderHTML 把标准 Markdown 渲染为 HTML 字符串
//
// 供粘贴路径的 HTML 中间表示使用。
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(StandardOptions...)
	var sb strings.Builder
	if err := md.Convert([]byte(markdown), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// convertBlocks 转换一个父节点下的所有块级子节点
func convertBlocks(parent ast.Node, source []byte) []document.Node {
	var nodes []document.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if b := convertBlock(c, source); b != nil {
			nodes = append(nodes, b)
		}
	}
	return nodes
}

// convertBlock 转换单个块级节点，未识别类型返回 nil
func convertBlock(n ast.Node, source []byte) document.Node {
	switch b := n.(type) {
	case *ast.Paragraph:
		return &document.Paragraph{Content: convertInlines(b, source)}

	case *ast.TextBlock:
		// 紧凑列表项的文本体，等价于段落
		return &document.Paragraph{Content: convertInlines(b, source)}

	case *ast.Heading:
		return convertHeading(b, source)

	case *ast.List:
		return convertList(b, source)

	case *ast.Blockquote:
		return &document.Blockquote{Content: convertBlocks(b, source)}

	case *ast.FencedCodeBlock:
		return &document.CodeBlock{
			Language: string(b.Language(source)),
			Text:     blockLines(b, source),
		}

	case *ast.CodeBlock:
		return &document.CodeBlock{Text: blockLines(b, source)}

	case *ast.ThematicBreak:
		return &document.HorizontalRule{}

	case *east.Table:
		return convertTable(b, source)

	case *ast.HTMLBlock:
		// Block HTML ignored
		return nil
	}

	return nil
}

// convertHeading 转换标题，透传 goldmark 生成的锚点 ID
func convertHeading(h *ast.Heading, source []byte) document.Node {
	heading := &document.Heading{
		Level:   h.Level,
		Content: convertInlines(h, source),
	}
	if v, ok := h.AttributeString("id"); ok {
		if id, ok := v.([]byte); ok {
			heading.ID = string(id)
		}
	}
	return heading
}

// convertList 转换有序/无序列表
func convertList(l *ast.List, source []byte) document.Node {
	items := make([]*document.ListItem, 0, l.ChildCount())
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		items = append(items, &document.ListItem{Content: convertBlocks(li, source)})
	}

	if l.IsOrdered() {
		return &document.OrderedList{Items: items}
	}
	return &document.BulletList{Items: items}
}

// convertTable 转换 GFM 表格，表头行的单元格带 Header 标记
func convertTable(t *east.Table, source []byte) document.Node {
	table := &document.Table{}

	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		_, isHeader := r.(*east.TableHeader)
		if _, isRow := r.(*east.TableRow); !isRow && !isHeader {
			continue
		}

		row := &document.TableRow{}
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cell, ok := c.(*east.TableCell)
			if !ok {
				continue
			}
			row.Cells = append(row.Cells, &document.TableCell{
				Header:  isHeader,
				Content: convertInlines(cell, source),
			})
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// markState 当前行内上下文继承的格式标记
type markState struct {
	bold   bool
	italic bool
}

// convertInlines 转换一个父节点下的所有行内子节点
func convertInlines(parent ast.Node, source []byte) []document.Node {
	return inlines(parent, source, markState{})
}

func inlines(parent ast.Node, source []byte, marks markState) []document.Node {
	var nodes []document.Node

	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch i := c.(type) {
		case *ast.Text:
			textContent := string(i.Segment.Value(source))
			if i.SoftLineBreak() {
				textContent += "\n"
			}
			if textContent != "" {
				nodes = append(nodes, textRun(textContent, marks))
			}
			if i.HardLineBreak() {
				nodes = append(nodes, &document.HardBreak{})
			}

		case *ast.String:
			if len(i.Value) > 0 {
				nodes = append(nodes, textRun(string(i.Value), marks))
			}

		case *ast.CodeSpan:
			run := textRun(codeSpanText(i, source), marks)
			run.Code = true
			nodes = append(nodes, run)

		case *ast.Emphasis:
			// Level 1 = italic, Level 2 = bold
			inner := marks
			if i.Level == 2 {
				inner.bold = true
			} else {
				inner.italic = true
			}
			nodes = append(nodes, inlines(i, source, inner)...)

		case *east.Strikethrough:
			// 模型无删除线标记，内容按普通文本透传
			nodes = append(nodes, inlines(i, source, marks)...)

		case *ast.Link:
			nodes = append(nodes, &document.Link{
				Href:    string(i.Destination),
				Content: inlines(i, source, marks),
			})

		case *ast.AutoLink:
			url := string(i.URL(source))
			nodes = append(nodes, &document.Link{
				Href:    url,
				Content: []document.Node{textRun(url, marks)},
			})

		case *ast.Image:
			// 模型无图片节点，降级为指向图片地址的链接
			nodes = append(nodes, &document.Link{
				Href:    string(i.Destination),
				Content: inlines(i, source, marks),
			})

		case *east.TaskCheckBox:
			marker := "[ ] "
			if i.IsChecked {
				marker = "[x] "
			}
			nodes = append(nodes, textRun(marker, marks))

		case *ast.RawHTML:
			// Inline HTML ignored

		default:
			// 未识别的行内节点：透传其子内容
			nodes = append(nodes, inlines(c, source, marks)...)
		}
	}

	return nodes
}

func textRun(textContent string, marks markState) *document.TextRun {
	return &document.TextRun{
		Text:   textContent,
		Bold:   marks.bold,
		Italic: marks.italic,
	}
}

// codeSpanText 拼接行内代码的文本内容
func codeSpanText(n *ast.CodeSpan, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = sb.Write(textNode.Segment.Value(source))
		}
	}
	return sb.String()
}

// blockLines 拼接代码块各行并去掉单个结尾换行
func blockLines(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = sb.Write(line.Value(source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
