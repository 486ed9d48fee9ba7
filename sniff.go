package richmd

import "regexp"

// markdownPatterns Markdown 语法嗅探的特征库
//
// 任意一条命中即认为文本值得按 Markdown 解析。宁可漏报不可误报：
// 误报会把用户的普通文本粘贴劫持成结构化插入。
var markdownPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,6} \S`),               // ATX 标题
	regexp.MustCompile(`\*\*[^*\n]+\*\*`),              // 粗体
	regexp.MustCompile(`\*[^*\s][^*\n]*\*`),            // 斜体
	regexp.MustCompile(`(?m)^\s*[-*+] \S`),             // 无序列表
	regexp.MustCompile(`(?m)^\s*\d+\. \S`),             // 有序列表
	regexp.MustCompile(`(?m)^\s*> `),                   // 引用块
	regexp.MustCompile("`[^`\n]+`"),                    // 行内代码
	regexp.MustCompile("(?m)^```"),                     // 围栏代码块
	regexp.MustCompile(`\[[^\]\n]+\]\([^)\n]+\)`),      // 链接
	regexp.MustCompile(`(?m)^\|.+\|[ \t]*$`),           // 表格行
}

// blockPatterns 块级语法特征，锚定单行开头
var blockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^#{1,6} \S`),
	regexp.MustCompile(`^\s*[-*+] \S`),
	regexp.MustCompile(`^\s*\d+\. \S`),
	regexp.MustCompile(`^\s*> `),
	regexp.MustCompile("^```"),
	regexp.MustCompile(`^\|.+\|[ \t]*$`),
	regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})[ \t]*$`),
}

// LooksLikeMarkdown 判断文本是否像 Markdown
//
// 粘贴适配器的闸门：返回 false 时调用方应走默认的纯文本插入。
func LooksLikeMarkdown(text string) bool {
	for _, pattern := range markdownPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// hasBlockSyntax 判断单行是否以块级 Markdown 语法开头
func hasBlockSyntax(line string) bool {
	for _, pattern := range blockPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
