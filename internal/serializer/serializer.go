// Package serializer 把文档树还原为 Markdown 文本
//
// 与解析方向相互独立实现：按节点类型逐个套用生成规则，
// 容器节点递归下降。往返保真是测试属性，不是结构保证。
package serializer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/riverfjs/richmd-go/internal/buffer"
	"github.com/riverfjs/richmd-go/internal/document"
	"github.com/riverfjs/richmd-go/internal/scanner"
)

// Serialize 把节点序列序列化为 Markdown
//
// 对格式良好的树不会失败；形状异常的节点（比如容器位置
// 出现文本节点）落到默认的子节点拼接规则，而不是报错。
func Serialize(nodes ...document.Node) string {
	b := buffer.New()
	for _, n := range nodes {
		b.Write(serializeNode(n))
	}
	return b.String()
}

// serializeNode 单节点生成规则的类型分发
func serializeNode(n document.Node) string {
	if n == nil {
		return ""
	}

	switch node := n.(type) {
	case *document.Heading:
		return serializeHeading(node)
	case *document.Paragraph:
		return serializeParagraph(node)
	case *document.CodeBlock:
		return serializeCodeBlock(node)
	case *document.DiagramBlock:
		return serializeDiagramBlock(node)
	case *document.Blockquote:
		return serializeBlockquote(node)
	case *document.BulletList:
		return serializeListItems(node.Items, false)
	case *document.OrderedList:
		return serializeListItems(node.Items, true)
	case *document.Table:
		return serializeTable(node)
	case *document.HorizontalRule:
		return "---\n\n"
	case *document.TextRun:
		return serializeTextRun(node)
	case *document.Link:
		return serializeLink(node)
	case *document.HardBreak:
		return "  \n"
	default:
		// 未识别节点：递归拼接子节点，不加任何标记
		if parent, ok := n.(document.Parent); ok {
			var sb strings.Builder
			for _, child := range parent.Children() {
				sb.WriteString(serializeNode(child))
			}
			return sb.String()
		}
		return ""
	}
}

// serializeHeading 标题：#*n + 空格 + 行内内容
func serializeHeading(h *document.Heading) string {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + serializeInlines(h.Content) + "\n\n"
}

// serializeParagraph 段落：内容为空时什么都不生成
func serializeParagraph(p *document.Paragraph) string {
	inner := strings.TrimSpace(serializeInlines(p.Content))
	if inner == "" {
		return ""
	}
	return inner + "\n\n"
}

// serializeCodeBlock 围栏代码块，语言标签可选
func serializeCodeBlock(c *document.CodeBlock) string {
	var sb strings.Builder
	sb.WriteString(scanner.FenceDelimiter)
	sb.WriteString(c.Language)
	sb.WriteString("\n")
	if c.Text != "" {
		sb.WriteString(strings.TrimSuffix(c.Text, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString(scanner.FenceDelimiter)
	sb.WriteString("\n\n")
	return sb.String()
}

// serializeDiagramBlock 图表块按扫描器的对称规则重新生成围栏
//
// 必须原样复现 mermaid 标记，这是和已持久化文档的线格式契约：
// 下次加载时扫描器要能重新识别出同一个图表段。
func serializeDiagramBlock(d *document.DiagramBlock) string {
	var sb strings.Builder
	sb.WriteString(scanner.FenceDelimiter)
	sb.WriteString(scanner.DiagramTag)
	sb.WriteString("\n")
	if d.SourceText != "" {
		sb.WriteString(strings.TrimSuffix(d.SourceText, "\n"))
		sb.WriteString("\n")
	}
	sb.WriteString(scanner.FenceDelimiter)
	sb.WriteString("\n\n")
	return sb.String()
}

// serializeBlockquote 引用块：子内容逐行加 "> " 前缀
func serializeBlockquote(q *document.Blockquote) string {
	inner := strings.TrimSpace(Serialize(q.Content...))
	if inner == "" {
		return ""
	}
	return buffer.PrefixLines(inner, "> ") + "\n\n"
}

// serializeListItems 列表：每项一行，多行内容缩进到标记之后
func serializeListItems(items []*document.ListItem, ordered bool) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		inner := strings.TrimSpace(Serialize(item.Content...))

		var marker string
		if ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		} else {
			marker = "- "
		}

		// 连续空行压成单换行，嵌套内容按标记宽度缩进
		inner = strings.ReplaceAll(inner, "\n\n", "\n")
		inner = buffer.Indent(inner, strings.Repeat(" ", len(marker)))

		lines = append(lines, marker+inner)
	}

	return strings.Join(lines, "\n") + "\n\n"
}

// serializeTable 表格：首行之后补一条分隔行
func serializeTable(t *document.Table) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range t.Rows {
		sb.WriteString(serializeTableRow(row))
		if i == 0 {
			sb.WriteString(separatorRow(len(row.Cells)))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// serializeTableRow 单行："| cell | cell |"
func serializeTableRow(row *document.TableRow) string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		text := strings.TrimSpace(serializeInlines(cell.Content))
		// 单元格内换行没有 Markdown 表示，折成空格
		text = strings.ReplaceAll(text, "\n", " ")
		cells[i] = text
	}
	return "| " + strings.Join(cells, " | ") + " |\n"
}

// separatorRow 表头分隔行，每列一个 "---"
func separatorRow(cols int) string {
	if cols == 0 {
		return ""
	}
	parts := make([]string, cols)
	for i := range parts {
		parts[i] = "---"
	}
	return "| " + strings.Join(parts, " | ") + " |\n"
}

// serializeInlines 行内节点序列
func serializeInlines(nodes []document.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch inline := n.(type) {
		case *document.TextRun:
			sb.WriteString(serializeTextRun(inline))
		case *document.Link:
			sb.WriteString(serializeLink(inline))
		case *document.HardBreak:
			sb.WriteString("  \n")
		default:
			// 行内位置出现块级节点：按通用规则处理
			sb.WriteString(serializeNode(n))
		}
	}
	return sb.String()
}

// serializeTextRun 文本片段，标记从内到外依次包裹：code、italic、bold
//
// 片段首尾的空白提到标记外面，紧贴空白的强调定界符不是合法 Markdown。
func serializeTextRun(t *document.TextRun) string {
	text := t.Text
	if text == "" {
		return ""
	}
	if !t.Code && !t.Italic && !t.Bold {
		return text
	}

	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	// 首尾切分必须和 TrimSpace 用同一套空白判定
	afterLeading := strings.TrimLeftFunc(text, unicode.IsSpace)
	leading := text[:len(text)-len(afterLeading)]
	trailing := afterLeading[len(core):]

	if t.Code {
		core = "`" + core + "`"
	}
	if t.Italic {
		core = "*" + core + "*"
	}
	if t.Bold {
		core = "**" + core + "**"
	}
	return leading + core + trailing
}

// serializeLink 链接："[text](href)"
func serializeLink(l *document.Link) string {
	return "[" + serializeInlines(l.Content) + "](" + l.Href + ")"
}
