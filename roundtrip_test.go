package richmd

import (
	"strings"
	"testing"
)

// TestRoundtrip_DiagramSegments 序列化输出再扫描得到同样的图表段
//
// 线格式契约：保存再打开不丢失、不变形任何图表。
func TestRoundtrip_DiagramSegments(t *testing.T) {
	inputs := []struct {
		name string
		text string
	}{
		{
			name: "single diagram with prose",
			text: "# Doc\n\nintro\n\n```mermaid\nflowchart TD\nA-->B\n```\n\noutro",
		},
		{
			name: "multiple diagrams",
			text: "```mermaid\ngraph LR\nX-->Y\n```\n\nmiddle\n\n```mermaid\nsequenceDiagram\n  A->>B: hi\n```",
		},
		{
			name: "diagram between code fences",
			text: "```python\nprint('hi')\n```\n\n```mermaid\ngantt\n  title Plan\n```",
		},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			original := ScanDiagrams(tt.text)

			nodes, err := LoadDocument(tt.text)
			if err != nil {
				t.Fatalf("LoadDocument() error = %v", err)
			}
			out := Serialize(nodes...)
			rescanned := ScanDiagrams(out)

			if len(rescanned) != len(original) {
				t.Fatalf("rescan found %d segments, want %d\noutput:\n%s", len(rescanned), len(original), out)
			}
			for i := range original {
				if rescanned[i].Content != original[i].Content {
					t.Errorf("segment %d content = %q, want %q", i, rescanned[i].Content, original[i].Content)
				}
				if rescanned[i].Kind != original[i].Kind {
					t.Errorf("segment %d kind = %v, want %v", i, rescanned[i].Kind, original[i].Kind)
				}
			}
		})
	}
}

// TestRoundtrip_Stable 二次往返输出稳定
func TestRoundtrip_Stable(t *testing.T) {
	text := "## Title\n\nsome **bold** text\n\n- a\n- b\n\n```mermaid\npie\n  \"x\" : 1\n```\n\n> quoted\n\n| H |\n| --- |\n| v |"

	nodes, err := LoadDocument(text)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	first := Serialize(nodes...)

	nodes, err = LoadDocument(first)
	if err != nil {
		t.Fatalf("LoadDocument() second pass error = %v", err)
	}
	second := Serialize(nodes...)

	if first != second {
		t.Errorf("serialization not stable:\nfirst:\n%q\nsecond:\n%q", first, second)
	}
}

// TestRoundtrip_ContentPreserved 结构往返后文本内容不丢失
func TestRoundtrip_ContentPreserved(t *testing.T) {
	text := "# Heading\n\nparagraph body\n\n- item one\n- item two\n\n```go\ncode()\n```"

	nodes, err := LoadDocument(text)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	out := Serialize(nodes...)

	for _, fragment := range []string{"# Heading", "paragraph body", "- item one", "- item two", "```go\ncode()\n```"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}
