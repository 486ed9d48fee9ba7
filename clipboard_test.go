package richmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/riverfjs/richmd-go/internal/document"
)

// fakeEditor 记录 ReplaceSelection 调用的测试替身
type fakeEditor struct {
	selection []Node
	replaced  []Node
	calls     int
}

func (e *fakeEditor) Selection() []Node { return e.selection }

func (e *fakeEditor) ReplaceSelection(nodes []Node) {
	e.replaced = nodes
	e.calls++
}

// fakeClipboard 按数据类型记录写入内容的测试替身
type fakeClipboard struct {
	written  map[string]string
	err      error
	failMime string
}

func (c *fakeClipboard) Write(mime string, data string) error {
	if c.err != nil {
		return c.err
	}
	if c.failMime != "" && mime == c.failMime {
		return errors.New("denied: " + mime)
	}
	if c.written == nil {
		c.written = make(map[string]string)
	}
	c.written[mime] = data
	return nil
}

// TestHandlePaste_Markdown 像 Markdown 的文本转换后插入
func TestHandlePaste_Markdown(t *testing.T) {
	editor := &fakeEditor{}

	if !HandlePaste(editor, "# Title\n\nbody text") {
		t.Fatalf("HandlePaste() = false, want true")
	}
	if editor.calls != 1 {
		t.Fatalf("ReplaceSelection called %d times, want 1", editor.calls)
	}
	if len(editor.replaced) != 2 {
		t.Fatalf("inserted %d nodes, want 2", len(editor.replaced))
	}
	if _, ok := editor.replaced[0].(*Heading); !ok {
		t.Errorf("replaced[0] is not a Heading: %T", editor.replaced[0])
	}
}

// TestHandlePaste_PlainText 不像 Markdown 的文本放行给默认插入
func TestHandlePaste_PlainText(t *testing.T) {
	editor := &fakeEditor{}

	if HandlePaste(editor, "just a plain sentence") {
		t.Fatalf("HandlePaste() = true, want false")
	}
	if editor.calls != 0 {
		t.Errorf("ReplaceSelection called %d times, want 0", editor.calls)
	}
}

// TestHandlePaste_DiagramFence 粘贴的 mermaid 围栏落成图表块
func TestHandlePaste_DiagramFence(t *testing.T) {
	editor := &fakeEditor{}

	if !HandlePaste(editor, "```mermaid\nflowchart TD\nA-->B\n```") {
		t.Fatalf("HandlePaste() = false, want true")
	}
	if len(editor.replaced) != 1 {
		t.Fatalf("inserted %d nodes, want 1", len(editor.replaced))
	}
	d, ok := editor.replaced[0].(*DiagramBlock)
	if !ok {
		t.Fatalf("replaced[0] is not a DiagramBlock: %T", editor.replaced[0])
	}
	if d.SourceText != "flowchart TD\nA-->B" {
		t.Errorf("SourceText = %q", d.SourceText)
	}
}

// TestHandlePaste_LinePreservation 多行无块级语法时逐行转换，保住分行
func TestHandlePaste_LinePreservation(t *testing.T) {
	editor := &fakeEditor{}

	// 行内有标记（通过嗅探），但没有任何块级语法
	text := "first **line**\nsecond line\nthird line"
	if !HandlePaste(editor, text) {
		t.Fatalf("HandlePaste() = false, want true")
	}

	// 逐行转换：每行一个段落，而不是合并成一个
	if len(editor.replaced) != 3 {
		t.Fatalf("inserted %d nodes, want 3 (one per line)", len(editor.replaced))
	}
	for i, n := range editor.replaced {
		if _, ok := n.(*Paragraph); !ok {
			t.Errorf("replaced[%d] is not a Paragraph: %T", i, n)
		}
	}
	if got := document.Text(editor.replaced[1]); got != "second line" {
		t.Errorf("second paragraph text = %q", got)
	}
}

// TestHandlePaste_BlockSyntaxMerges 出现块级语法时整体交给标准解析
func TestHandlePaste_BlockSyntaxMerges(t *testing.T) {
	editor := &fakeEditor{}

	if !HandlePaste(editor, "# Title\nbody under title") {
		t.Fatalf("HandlePaste() = false, want true")
	}
	// 标准解析：标题 + 段落，而不是两行两个段落
	if len(editor.replaced) != 2 {
		t.Fatalf("inserted %d nodes, want 2", len(editor.replaced))
	}
	if _, ok := editor.replaced[0].(*Heading); !ok {
		t.Errorf("replaced[0] is not a Heading: %T", editor.replaced[0])
	}
}

// TestHandleCopy 选区写出 Markdown 与 HTML 双表示
func TestHandleCopy(t *testing.T) {
	editor := &fakeEditor{selection: []Node{
		&document.Heading{Level: 2, Content: []Node{&document.TextRun{Text: "Title"}}},
		&document.DiagramBlock{Kind: "flowchart", SourceText: "flowchart TD\nA-->B"},
	}}
	clipboard := &fakeClipboard{}

	if !HandleCopy(editor, clipboard) {
		t.Fatalf("HandleCopy() = false, want true")
	}

	markdown, ok := clipboard.written[MIMEMarkdown]
	if !ok {
		t.Fatalf("no %s written", MIMEMarkdown)
	}
	if !strings.HasPrefix(markdown, "## Title\n\n") {
		t.Errorf("markdown = %q", markdown)
	}
	if !strings.Contains(markdown, "```mermaid\nflowchart TD\nA-->B\n```") {
		t.Errorf("markdown missing diagram fence: %q", markdown)
	}

	if plain := clipboard.written[MIMEPlainText]; plain != markdown {
		t.Errorf("plain text differs from markdown: %q", plain)
	}

	rendered, ok := clipboard.written[MIMEHTML]
	if !ok {
		t.Fatalf("no %s written", MIMEHTML)
	}
	if !strings.Contains(rendered, "<h2>Title</h2>") {
		t.Errorf("html = %q", rendered)
	}
	if !strings.Contains(rendered, `<div class="mermaid">`) {
		t.Errorf("html missing mermaid container: %q", rendered)
	}
}

// TestHandleCopy_EmptySelection 空选区不处理
func TestHandleCopy_EmptySelection(t *testing.T) {
	clipboard := &fakeClipboard{}
	if HandleCopy(&fakeEditor{}, clipboard) {
		t.Fatalf("HandleCopy() = true, want false")
	}
	if len(clipboard.written) != 0 {
		t.Errorf("clipboard written despite empty selection")
	}
}

// TestHandleCopy_WriteFailure 剪贴板全部写入失败返回未处理
func TestHandleCopy_WriteFailure(t *testing.T) {
	editor := &fakeEditor{selection: []Node{
		&document.Paragraph{Content: []Node{&document.TextRun{Text: "x"}}},
	}}
	clipboard := &fakeClipboard{err: errors.New("denied")}

	if HandleCopy(editor, clipboard) {
		t.Fatalf("HandleCopy() = true, want false")
	}
}

// TestHandleCopy_PartialWriteFailure 单个表示写入失败不影响其余表示
func TestHandleCopy_PartialWriteFailure(t *testing.T) {
	editor := &fakeEditor{selection: []Node{
		&document.Paragraph{Content: []Node{&document.TextRun{Text: "x"}}},
	}}
	clipboard := &fakeClipboard{failMime: MIMEHTML}

	if !HandleCopy(editor, clipboard) {
		t.Fatalf("HandleCopy() = false, want true")
	}
	if _, ok := clipboard.written[MIMEMarkdown]; !ok {
		t.Errorf("%s not written after html failure", MIMEMarkdown)
	}
	if _, ok := clipboard.written[MIMEPlainText]; !ok {
		t.Errorf("%s not written after html failure", MIMEPlainText)
	}
	if _, ok := clipboard.written[MIMEHTML]; ok {
		t.Errorf("%s written despite forced failure", MIMEHTML)
	}
}
