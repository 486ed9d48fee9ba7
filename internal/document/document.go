// Package document 定义富文本文档树的节点模型
//
// 节点构成一个封闭的 tagged union：每种变体是一个独立的结构体，
// 通过 Type() 区分。转换核心只生产和消费这些节点，
// 树的所有权归编辑面，转换函数不得修改传入的树。
package document

import (
	"strings"

	"github.com/riverfjs/richmd-go/internal/diagram"
)

// NodeType 节点变体标签
type NodeType int

const (
	// 块级节点
	NodeParagraph NodeType = iota
	NodeHeading
	NodeBulletList
	NodeOrderedList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeDiagramBlock
	NodeTable
	NodeTableRow
	NodeTableCell
	NodeHorizontalRule

	// 行内节点
	NodeTextRun
	NodeLink
	NodeHardBreak
)

// String returns the node type tag.
func (nt NodeType) String() string {
	switch nt {
	case NodeParagraph:
		return "paragraph"
	case NodeHeading:
		return "heading"
	case NodeBulletList:
		return "bulletList"
	case NodeOrderedList:
		return "orderedList"
	case NodeListItem:
		return "listItem"
	case NodeBlockquote:
		return "blockquote"
	case NodeCodeBlock:
		return "codeBlock"
	case NodeDiagramBlock:
		return "diagramBlock"
	case NodeTable:
		return "table"
	case NodeTableRow:
		return "tableRow"
	case NodeTableCell:
		return "tableCell"
	case NodeHorizontalRule:
		return "horizontalRule"
	case NodeTextRun:
		return "text"
	case NodeLink:
		return "link"
	case NodeHardBreak:
		return "hardBreak"
	default:
		return "unknown"
	}
}

// Node 文档树的一个节点
type Node interface {
	Type() NodeType
}

// Parent 携带子节点的容器节点
//
// 序列化器对未识别节点的默认规则（递归拼接子节点）依赖这个接口。
type Parent interface {
	Node
	Children() []Node
}

// ViewMode 图表块在编辑面中的显示模式
type ViewMode int

const (
	ViewSource ViewMode = iota
	ViewPreview
	ViewSplit
)

// String returns the view mode tag.
func (vm ViewMode) String() string {
	switch vm {
	case ViewSource:
		return "source"
	case ViewPreview:
		return "preview"
	case ViewSplit:
		return "split"
	default:
		return "preview"
	}
}

// Theme 图表渲染主题标签
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
	ThemeForest  Theme = "forest"
	ThemeNeutral Theme = "neutral"
)

// Paragraph 段落，children 为行内节点
type Paragraph struct {
	Content []Node
}

func (p *Paragraph) Type() NodeType   { return NodeParagraph }
func (p *Paragraph) Children() []Node { return p.Content }

// Heading 标题，Level 为 1..6
//
// ID 是锚点标识，由宿主编辑器维护唯一性；
// 转换核心双向透传，自身不做唯一性登记。
type Heading struct {
	Level   int
	ID      string
	Content []Node
}

func (h *Heading) Type() NodeType   { return NodeHeading }
func (h *Heading) Children() []Node { return h.Content }

// BulletList 无序列表
type BulletList struct {
	Items []*ListItem
}

func (l *BulletList) Type() NodeType { return NodeBulletList }

func (l *BulletList) Children() []Node {
	nodes := make([]Node, len(l.Items))
	for i, item := range l.Items {
		nodes[i] = item
	}
	return nodes
}

// OrderedList 有序列表，序号从 1 开始
type OrderedList struct {
	Items []*ListItem
}

func (l *OrderedList) Type() NodeType { return NodeOrderedList }

func (l *OrderedList) Children() []Node {
	nodes := make([]Node, len(l.Items))
	for i, item := range l.Items {
		nodes[i] = item
	}
	return nodes
}

// ListItem 列表项，children 为块级节点
type ListItem struct {
	Content []Node
}

func (li *ListItem) Type() NodeType   { return NodeListItem }
func (li *ListItem) Children() []Node { return li.Content }

// Blockquote 引用块，children 为块级节点
type Blockquote struct {
	Content []Node
}

func (q *Blockquote) Type() NodeType   { return NodeBlockquote }
func (q *Blockquote) Children() []Node { return q.Content }

// CodeBlock 普通围栏代码块（非图表）
type CodeBlock struct {
	Language string
	Text     string
}

func (c *CodeBlock) Type() NodeType { return NodeCodeBlock }

// DiagramBlock 图表块：树中的不透明叶子
//
// SourceText 是未解析的图表源码，块本身永远不含嵌套块级节点；
// 渲染失败后 SourceText 必须保持可恢复。
type DiagramBlock struct {
	Kind       diagram.Kind
	ViewMode   ViewMode
	Theme      Theme
	SourceText string
}

func (d *DiagramBlock) Type() NodeType { return NodeDiagramBlock }

// Table 表格，首行为表头
type Table struct {
	Rows []*TableRow
}

func (t *Table) Type() NodeType { return NodeTable }

func (t *Table) Children() []Node {
	nodes := make([]Node, len(t.Rows))
	for i, row := range t.Rows {
		nodes[i] = row
	}
	return nodes
}

// TableRow 表格行
type TableRow struct {
	Cells []*TableCell
}

func (r *TableRow) Type() NodeType { return NodeTableRow }

func (r *TableRow) Children() []Node {
	nodes := make([]Node, len(r.Cells))
	for i, cell := range r.Cells {
		nodes[i] = cell
	}
	return nodes
}

// TableCell 表格单元格，children 为行内节点
type TableCell struct {
	Header  bool
	Content []Node
}

func (c *TableCell) Type() NodeType   { return NodeTableCell }
func (c *TableCell) Children() []Node { return c.Content }

// HorizontalRule 水平分隔线
type HorizontalRule struct{}

func (hr *HorizontalRule) Type() NodeType { return NodeHorizontalRule }

// TextRun 带格式标记的文本片段
type TextRun struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
}

func (t *TextRun) Type() NodeType { return NodeTextRun }

// Link 链接，children 为行内节点
type Link struct {
	Href    string
	Content []Node
}

func (l *Link) Type() NodeType   { return NodeLink }
func (l *Link) Children() []Node { return l.Content }

// HardBreak 段内强制换行
type HardBreak struct{}

func (hb *HardBreak) Type() NodeType { return NodeHardBreak }

// Text 递归收集节点下的纯文本内容
func Text(n Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n Node, sb *strings.Builder) {
	switch t := n.(type) {
	case *TextRun:
		sb.WriteString(t.Text)
	case *CodeBlock:
		sb.WriteString(t.Text)
	case *DiagramBlock:
		sb.WriteString(t.SourceText)
	case Parent:
		for _, child := range t.Children() {
			collectText(child, sb)
		}
	}
}
