package buffer

import "testing"

// TestBuilder 测试片段累积
func TestBuilder(t *testing.T) {
	b := New()
	if b.String() != "" {
		t.Errorf("empty builder String() = %q, want empty", b.String())
	}

	b.Write("# Title\n\n")
	b.Write("")
	b.Write("body")

	if got := b.String(); got != "# Title\n\nbody" {
		t.Errorf("String() = %q", got)
	}
	if got := b.Len(); got != len("# Title\n\nbody") {
		t.Errorf("Len() = %d", got)
	}

	b.Reset()
	if b.String() != "" || b.Len() != 0 {
		t.Errorf("Reset() did not clear builder")
	}
}

// TestPrefixLines 非空行加前缀，空行保持原样
func TestPrefixLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		prefix string
		want   string
	}{
		{"single line", "hello", "> ", "> hello"},
		{"multi line", "a\nb", "> ", "> a\n> b"},
		{"blank line preserved", "a\n\nb", "> ", "> a\n\n> b"},
		{"empty", "", "> ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLines(tt.text, tt.prefix); got != tt.want {
				t.Errorf("PrefixLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestIndent 首行不动，续行加缩进
func TestIndent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		indent string
		want   string
	}{
		{"single line", "item", "  ", "item"},
		{"continuation", "item\nmore", "  ", "item\n  more"},
		{"blank continuation", "item\n\nmore", "  ", "item\n\n  more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indent(tt.text, tt.indent); got != tt.want {
				t.Errorf("Indent() = %q, want %q", got, tt.want)
			}
		})
	}
}
