package richmd

import "strings"

// 剪贴板数据类型标签
const (
	MIMEPlainText = "text/plain"
	MIMEMarkdown  = "text/markdown"
	MIMEHTML      = "text/html"
)

// Editor 宿主编辑器暴露给适配器的最小界面
//
// 适配器不关心选区的几何位置，只消费和替换选区对应的节点序列。
type Editor interface {
	// Selection 返回当前选区覆盖的节点序列，空选区返回空
	Selection() []Node
	// ReplaceSelection 用给定节点序列替换当前选区
	ReplaceSelection(nodes []Node)
}

// Clipboard 宿主剪贴板的写入界面
type Clipboard interface {
	// Write 按数据类型写入一种剪贴板表示
	Write(mime string, data string) error
}

// HandlePaste 粘贴适配器
//
// 文本先过 Markdown 嗅探，不像 Markdown 时立即放行；
// 转换失败只记日志，同样放行。返回 false 表示未处理，
// 宿主应执行默认的纯文本插入——粘贴永远不会因为转换出错而丢内容。
func HandlePaste(editor Editor, text string, opts ...Option) bool {
	if !LooksLikeMarkdown(text) {
		return false
	}

	nodes, err := convertPasted(text, opts...)
	if err != nil {
		Logger.Printf("paste conversion failed, falling back to plain insert: %v", err)
		return false
	}
	if len(nodes) == 0 {
		return false
	}

	editor.ReplaceSelection(nodes)
	return true
}

// convertPasted 粘贴文本的转换策略
//
// 多行文本在没有任何块级语法时逐行独立转换：标准解析会把
// 相邻行合并成一个段落，而用户手敲的换行多半是有意的分行。
func convertPasted(text string, opts ...Option) ([]Node, error) {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && !anyLineHasBlockSyntax(lines) {
		var nodes []Node
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			converted, err := ConvertSlice(line, opts...)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, converted...)
		}
		return nodes, nil
	}

	return ConvertSlice(text, opts...)
}

func anyLineHasBlockSyntax(lines []string) bool {
	for _, line := range lines {
		if hasBlockSyntax(line) {
			return true
		}
	}
	return false
}

// HandleCopy 复制适配器
//
// 把选区同时写成 Markdown 和 HTML 两种表示：粘贴到 Markdown
// 目标得到 Markdown 文本，粘贴到富文本目标得到带格式的内容。
// 单个表示写入失败只记日志，其余表示照常写入；
// 全部写入失败或选区为空才返回 false，交还宿主的默认复制。
func HandleCopy(editor Editor, clipboard Clipboard) bool {
	selection := editor.Selection()
	if len(selection) == 0 {
		return false
	}

	markdown := Serialize(selection...)
	rendered := ExportHTML(selection...)

	written := 0
	for _, entry := range []struct {
		mime string
		data string
	}{
		{MIMEMarkdown, markdown},
		{MIMEPlainText, markdown},
		{MIMEHTML, rendered},
	} {
		if err := clipboard.Write(entry.mime, entry.data); err != nil {
			Logger.Printf("clipboard write failed (%s): %v", entry.mime, err)
			continue
		}
		written++
	}

	return written > 0
}
