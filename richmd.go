// Package richmd 在 Markdown 文本与富文本文档树之间双向转换
//
// 这个包面向桌面 Markdown 编辑器的转换核心：打开文件时把整篇
// Markdown 装载为文档树，编辑过程中把粘贴的 Markdown 片段转换为
// 可拼接的节点序列，保存时把文档树还原为 Markdown 文本。
// mermaid 图表围栏在两个方向上都作为一等块级节点处理。
//
// 核心功能：
//   - 扫描文本中的 mermaid 围栏段并按首行语法分类
//   - 整篇装载：Markdown → 文档节点序列（直接构造）
//   - 片段转换：Markdown → HTML 中间表示 → 文档节点序列
//   - 序列化：文档节点序列 → Markdown 文本
//   - 粘贴/复制适配器，桥接宿主编辑器与剪贴板
//   - 图表渲染（mermaid.ink，可选）
//
// 主要 API：
//   - LoadDocument(): 打开文件路径，转换整篇文本
//   - ConvertSlice(): 粘贴路径，转换 Markdown 片段
//   - Serialize(): 保存路径，树还原为 Markdown
//   - HandlePaste() / HandleCopy(): 剪贴板适配器
//
// 示例：
//
//	// 装载整篇文档
//	nodes, err := richmd.LoadDocument(markdown)
//
//	// 编辑后写回
//	out := richmd.Serialize(nodes...)
//
//	// 粘贴事件
//	if richmd.HandlePaste(editor, clipboardText) {
//	    // 已按 Markdown 结构插入
//	}
package richmd

import (
	"github.com/riverfjs/richmd-go/internal/diagram"
	"github.com/riverfjs/richmd-go/internal/document"
	"github.com/riverfjs/richmd-go/internal/scanner"
)

// 导出类型别名
type (
	Node     = document.Node
	NodeType = document.NodeType
	Parent   = document.Parent

	Paragraph      = document.Paragraph
	Heading        = document.Heading
	BulletList     = document.BulletList
	OrderedList    = document.OrderedList
	ListItem       = document.ListItem
	Blockquote     = document.Blockquote
	CodeBlock      = document.CodeBlock
	DiagramBlock   = document.DiagramBlock
	Table          = document.Table
	TableRow       = document.TableRow
	TableCell      = document.TableCell
	HorizontalRule = document.HorizontalRule
	TextRun        = document.TextRun
	Link           = document.Link
	HardBreak      = document.HardBreak

	ViewMode = document.ViewMode
	Theme    = document.Theme

	DiagramKind    = diagram.Kind
	DiagramSegment = scanner.Segment
)

// 节点类型标签
const (
	NodeParagraph      = document.NodeParagraph
	NodeHeading        = document.NodeHeading
	NodeBulletList     = document.NodeBulletList
	NodeOrderedList    = document.NodeOrderedList
	NodeListItem       = document.NodeListItem
	NodeBlockquote     = document.NodeBlockquote
	NodeCodeBlock      = document.NodeCodeBlock
	NodeDiagramBlock   = document.NodeDiagramBlock
	NodeTable          = document.NodeTable
	NodeTableRow       = document.NodeTableRow
	NodeTableCell      = document.NodeTableCell
	NodeHorizontalRule = document.NodeHorizontalRule
	NodeTextRun        = document.NodeTextRun
	NodeLink           = document.NodeLink
	NodeHardBreak      = document.NodeHardBreak
)

// 图表块显示模式
const (
	ViewSource  = document.ViewSource
	ViewPreview = document.ViewPreview
	ViewSplit   = document.ViewSplit
)

// 图表渲染主题
const (
	ThemeDefault = document.ThemeDefault
	ThemeDark    = document.ThemeDark
	ThemeForest  = document.ThemeForest
	ThemeNeutral = document.ThemeNeutral
)

// ScanDiagrams 返回文本中所有 mermaid 图表段，按出现顺序排列
//
// 纯函数。两条转换路径共用这一次分段结果，保证打开文件和
// 粘贴片段对同一段文本识别出完全相同的图表段。
func ScanDiagrams(text string) []DiagramSegment {
	return scanner.Scan(text)
}

// ClassifyDiagram 按首个有效行的语法判定图表种类
//
// 全函数：任何输入都返回一个确定的种类，无法识别时为 flowchart。
func ClassifyDiagram(source string) DiagramKind {
	return diagram.Classify(source)
}
