package richmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/riverfjs/richmd-go/internal/document"
)

// AssignHeadingIDs 给节点序列中的标题分配唯一锚点 ID
//
// 已有 ID 的标题保持不变并登记占用；缺失的按标题文本生成 slug，
// 冲突时追加 -2、-3 递增后缀。taken 传入文档其余部分已占用的
// ID 集合（可为 nil），调用后包含本序列新登记的全部 ID。
// 返回新的节点序列，不修改传入的树。
func AssignHeadingIDs(nodes []Node, taken map[string]bool) []Node {
	if taken == nil {
		taken = make(map[string]bool)
	}

	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = assignNodeID(n, taken)
	}
	return out
}

func assignNodeID(n Node, taken map[string]bool) Node {
	switch t := n.(type) {
	case *document.Heading:
		id := t.ID
		if id == "" {
			id = slugify(document.Text(t))
		}
		if id == "" {
			// 纯符号标题等 slug 不出内容的情形
			id = "heading-" + uuid.NewString()[:8]
		}
		id = dedupeID(id, taken)
		taken[id] = true

		h := *t
		h.ID = id
		return &h

	case *document.Blockquote:
		q := *t
		q.Content = AssignHeadingIDs(t.Content, taken)
		return &q

	case *document.BulletList:
		l := *t
		l.Items = assignListItemIDs(t.Items, taken)
		return &l

	case *document.OrderedList:
		l := *t
		l.Items = assignListItemIDs(t.Items, taken)
		return &l

	default:
		return n
	}
}

func assignListItemIDs(items []*ListItem, taken map[string]bool) []*ListItem {
	out := make([]*ListItem, len(items))
	for i, item := range items {
		li := *item
		li.Content = AssignHeadingIDs(item.Content, taken)
		out[i] = &li
	}
	return out
}

// dedupeID 已占用的 ID 追加递增后缀
func dedupeID(id string, taken map[string]bool) string {
	if !taken[id] {
		return id
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// slugify 标题文本转锚点 slug：小写、空白折成连字符、去掉符号
func slugify(text string) string {
	var sb strings.Builder
	lastHyphen := true // 抑制开头的连字符

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				sb.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
