// Package buffer Markdown 文本装配工具
package buffer

import "strings"

// Builder 按片段累积输出文本
type Builder struct {
	parts []string
}

// New creates a new Builder.
func New() *Builder {
	return &Builder{
		parts: make([]string, 0),
	}
}

// Write appends text to the builder.
func (b *Builder) Write(text string) {
	if text == "" {
		return
	}
	b.parts = append(b.parts, text)
}

// Len returns the total byte length of the accumulated text.
func (b *Builder) Len() int {
	total := 0
	for _, p := range b.parts {
		total += len(p)
	}
	return total
}

// String returns the accumulated text.
func (b *Builder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	// Calculate total length, then build in one pass
	result := make([]byte, 0, b.Len())
	for _, p := range b.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the builder.
func (b *Builder) Reset() {
	b.parts = b.parts[:0]
}

// PrefixLines 给每个非空行加前缀，空行保持原样
//
// 引用块的序列化规则：子内容逐行加 "> "。
func PrefixLines(text string, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Indent 给续行（第二行起的非空行）加缩进
//
// 列表项的多行内容靠这个对齐到列表标记之后。
func Indent(text string, indent string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
