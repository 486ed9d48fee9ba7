// Package htmlconv 负责文档树与 HTML 的互转
//
// 导出给复制适配器提供富文本剪贴板表示；导入是通用的
// HTML-to-tree 路径，粘贴管道用它消费标准转换器的 HTML 中间产物。
package htmlconv

import (
	"fmt"
	"html"
	"strings"

	"github.com/riverfjs/richmd-go/internal/document"
)

// Export 把节点序列导出为 HTML 字符串
func Export(nodes []document.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		exportNode(&sb, n)
	}
	return sb.String()
}

func exportNode(sb *strings.Builder, n document.Node) {
	switch node := n.(type) {
	case *document.Paragraph:
		inner := exportInlines(node.Content)
		if inner == "" {
			return
		}
		sb.WriteString("<p>")
		sb.WriteString(inner)
		sb.WriteString("</p>\n")

	case *document.Heading:
		level := node.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		if node.ID != "" {
			fmt.Fprintf(sb, "<h%d id=%q>", level, node.ID)
		} else {
			fmt.Fprintf(sb, "<h%d>", level)
		}
		sb.WriteString(exportInlines(node.Content))
		fmt.Fprintf(sb, "</h%d>\n", level)

	case *document.BulletList:
		sb.WriteString("<ul>\n")
		exportListItems(sb, node.Items)
		sb.WriteString("</ul>\n")

	case *document.OrderedList:
		sb.WriteString("<ol>\n")
		exportListItems(sb, node.Items)
		sb.WriteString("</ol>\n")

	case *document.Blockquote:
		sb.WriteString("<blockquote>\n")
		for _, child := range node.Content {
			exportNode(sb, child)
		}
		sb.WriteString("</blockquote>\n")

	case *document.CodeBlock:
		sb.WriteString("<pre><code")
		if node.Language != "" {
			fmt.Fprintf(sb, " class=%q", "language-"+node.Language)
		}
		sb.WriteString(">")
		sb.WriteString(html.EscapeString(node.Text))
		sb.WriteString("</code></pre>\n")

	case *document.DiagramBlock:
		// mermaid.js 可直接水合的容器格式
		sb.WriteString(`<div class="mermaid">`)
		sb.WriteString(html.EscapeString(node.SourceText))
		sb.WriteString("</div>\n")

	case *document.Table:
		sb.WriteString("<table><tbody>\n")
		for _, row := range node.Rows {
			sb.WriteString("<tr>")
			for _, cell := range row.Cells {
				tag := "td"
				if cell.Header {
					tag = "th"
				}
				fmt.Fprintf(sb, "<%s>%s</%s>", tag, exportInlines(cell.Content), tag)
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody></table>\n")

	case *document.HorizontalRule:
		sb.WriteString("<hr>\n")

	default:
		if parent, ok := n.(document.Parent); ok {
			for _, child := range parent.Children() {
				exportNode(sb, child)
			}
		}
	}
}

func exportListItems(sb *strings.Builder, items []*document.ListItem) {
	for _, item := range items {
		sb.WriteString("<li>")
		for _, child := range item.Content {
			exportNode(sb, child)
		}
		sb.WriteString("</li>\n")
	}
}

func exportInlines(nodes []document.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch inline := n.(type) {
		case *document.TextRun:
			text := html.EscapeString(inline.Text)
			if inline.Code {
				text = "<code>" + text + "</code>"
			}
			if inline.Italic {
				text = "<em>" + text + "</em>"
			}
			if inline.Bold {
				text = "<strong>" + text + "</strong>"
			}
			sb.WriteString(text)
		case *document.Link:
			fmt.Fprintf(&sb, `<a href=%q>%s</a>`, inline.Href, exportInlines(inline.Content))
		case *document.HardBreak:
			sb.WriteString("<br>")
		default:
			exportNode(&sb, n)
		}
	}
	return sb.String()
}
