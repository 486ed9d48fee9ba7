package diagram

import (
	"regexp"
	"strings"
)

// Kind 表示图表语法的封闭分类
//
// 分类只依据图表源码的首个有效声明行，与渲染器无关。
type Kind string

const (
	KindFlowchart   Kind = "flowchart"
	KindSequence    Kind = "sequence"
	KindClass       Kind = "class"
	KindState       Kind = "state"
	KindGantt       Kind = "gantt"
	KindPie         Kind = "pie"
	KindMindmap     Kind = "mindmap"
	KindER          Kind = "er"
	KindGit         Kind = "git"
	KindTimeline    Kind = "timeline"
	KindJourney     Kind = "journey"
	KindQuadrant    Kind = "quadrant"
	KindC4          Kind = "c4"
	KindRequirement Kind = "requirement"
)

// DefaultKind 未识别内容的回退分类
const DefaultKind = KindFlowchart

// kindPattern 单条分类规则：行首锚定、大小写不敏感
type kindPattern struct {
	re   *regexp.Regexp
	kind Kind
}

// kindPatterns 按优先级排序，首个命中生效
// flowchart 放在最后，graph/flowchart 关键字最宽泛
var kindPatterns = []kindPattern{
	{regexp.MustCompile(`(?i)^sequenceDiagram\b`), KindSequence},
	{regexp.MustCompile(`(?i)^classDiagram\b`), KindClass},
	{regexp.MustCompile(`(?i)^stateDiagram`), KindState},
	{regexp.MustCompile(`(?i)^erDiagram\b`), KindER},
	{regexp.MustCompile(`(?i)^gantt\b`), KindGantt},
	{regexp.MustCompile(`(?i)^pie\b`), KindPie},
	{regexp.MustCompile(`(?i)^mindmap\b`), KindMindmap},
	{regexp.MustCompile(`(?i)^gitGraph\b`), KindGit},
	{regexp.MustCompile(`(?i)^timeline\b`), KindTimeline},
	{regexp.MustCompile(`(?i)^journey\b`), KindJourney},
	{regexp.MustCompile(`(?i)^quadrantChart\b`), KindQuadrant},
	{regexp.MustCompile(`(?i)^C4(Context|Container|Component|Dynamic|Deployment)\b`), KindC4},
	{regexp.MustCompile(`(?i)^requirementDiagram\b`), KindRequirement},
	{regexp.MustCompile(`(?i)^(graph|flowchart)\b`), KindFlowchart},
}

// Classify 根据源码内容推断图表分类
//
// 只看首个非空行（图表语法的声明行）。全函数、确定性：
// 任意输入都返回且仅返回一个 Kind，无规则命中时回退到 DefaultKind。
func Classify(content string) Kind {
	decl := firstSignificantLine(content)
	for _, p := range kindPatterns {
		if p.re.MatchString(decl) {
			return p.kind
		}
	}
	return DefaultKind
}

// firstSignificantLine 返回首个非空行（已去除首尾空白）
func firstSignificantLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// String returns the kind tag as written in diagram tooling.
func (k Kind) String() string {
	return string(k)
}
