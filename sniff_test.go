package richmd

import "testing"

// TestLooksLikeMarkdown 嗅探闸门
func TestLooksLikeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"heading", "# Title", true},
		{"deep heading", "###### notes", true},
		{"bold", "some **bold** words", true},
		{"italic", "an *italic* word", true},
		{"bullet list", "- item one\n- item two", true},
		{"star list", "* item", true},
		{"ordered list", "1. first\n2. second", true},
		{"blockquote", "> quoted line", true},
		{"inline code", "call `doIt()` now", true},
		{"fence", "```\ncode\n```", true},
		{"mermaid fence", "```mermaid\ngraph TD\n```", true},
		{"link", "see [docs](https://example.com)", true},
		{"table row", "| a | b |", true},

		{"plain sentence", "just a plain sentence with no markup", false},
		{"empty", "", false},
		{"hash not heading", "#hashtag without space", false},
		{"lone asterisks", "a * b * c", false},
		{"multiline plain", "first line\nsecond line\nthird line", false},
		{"url without brackets", "visit https://example.com today", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeMarkdown(tt.text); got != tt.want {
				t.Errorf("LooksLikeMarkdown(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestHasBlockSyntax 单行块级语法判定
func TestHasBlockSyntax(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"heading", "# Title", true},
		{"bullet", "- item", true},
		{"indented bullet", "  - nested", true},
		{"ordered", "3. third", true},
		{"quote", "> quote", true},
		{"fence", "```go", true},
		{"table", "| a | b |", true},
		{"rule", "---", true},

		{"plain", "just words", false},
		{"inline bold only", "has **bold** but no block syntax", false},
		{"dash in text", "well - known", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasBlockSyntax(tt.line); got != tt.want {
				t.Errorf("hasBlockSyntax(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
