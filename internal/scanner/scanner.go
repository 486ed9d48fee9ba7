// Package scanner 在原始 Markdown 文本中定位图表围栏块
//
// 扫描是一次从左到右的遍历：按三反引号分隔符把文本切成
// 栏外/栏内交替的片段，只把首个非空行恰好为 mermaid 标记的
// 栏内片段识别为图表段。其他围栏（普通代码块）原样留给
// 标准 Markdown 转换器处理。
package scanner

import (
	"strings"

	"github.com/riverfjs/richmd-go/internal/diagram"
)

// FenceDelimiter 围栏分隔符
const FenceDelimiter = "```"

// DiagramTag 围栏内首行的图表子语言标记
//
// 持久化文档的线格式契约：大小写敏感、精确匹配。
// 序列化器写出的图表块必须原样复现这个标记。
const DiagramTag = "mermaid"

// Segment 一个图表段及其在原文中的位置
//
// StartIndex/EndIndex 是相对原文的字节偏移，覆盖整个围栏区域
// （含两端分隔符），调用方据此切分原文而无需重新扫描。
// Content 是去掉标记行并修剪首尾空白后的围栏内文本。
type Segment struct {
	Content    string
	StartIndex int
	EndIndex   int
	Kind       diagram.Kind
}

// Scan 返回文本中所有图表段，按出现顺序（StartIndex 升序）排列
//
// 纯函数，无副作用。未闭合的围栏延伸到文本末尾：
// 这是定义过的退化情形，不是错误。
func Scan(text string) []Segment {
	var segments []Segment

	offsets := fenceOffsets(text)

	// 偶数下标是开栏，奇数下标是闭栏
	for i := 0; i < len(offsets); i += 2 {
		open := offsets[i]

		var inside string
		var end int
		if i+1 < len(offsets) {
			inside = text[open+len(FenceDelimiter) : offsets[i+1]]
			end = offsets[i+1] + len(FenceDelimiter)
		} else {
			// Unterminated fence extends to end of text
			inside = text[open+len(FenceDelimiter):]
			end = len(text)
		}

		content, ok := diagramContent(inside)
		if !ok {
			continue
		}

		segments = append(segments, Segment{
			Content:    content,
			StartIndex: open,
			EndIndex:   end,
			Kind:       diagram.Classify(content),
		})
	}

	return segments
}

// fenceOffsets 收集所有围栏分隔符的字节偏移
func fenceOffsets(text string) []int {
	var offsets []int
	from := 0
	for {
		idx := strings.Index(text[from:], FenceDelimiter)
		if idx < 0 {
			return offsets
		}
		offsets = append(offsets, from+idx)
		from += idx + len(FenceDelimiter)
	}
}

// diagramContent 判断栏内片段是否为图表段
//
// 首个非空行（修剪后）必须与 DiagramTag 精确匹配；
// 返回去掉标记行后修剪过的内容。标记行之后没有内容时返回空串。
func diagramContent(inside string) (string, bool) {
	lines := strings.Split(inside, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed != DiagramTag {
			return "", false
		}
		return strings.TrimSpace(strings.Join(lines[i+1:], "\n")), true
	}
	return "", false
}
