package richmd

import (
	"strings"

	"github.com/riverfjs/richmd-go/internal/converter"
	"github.com/riverfjs/richmd-go/internal/document"
	"github.com/riverfjs/richmd-go/internal/htmlconv"
)

// stdConvert 标准 Markdown 片段到节点序列的转换函数
//
// 拼接循环对两条入口路径复用同一套分段逻辑，差异只在这个函数：
// 装载路径直接构造，粘贴路径走 HTML 中间表示。
type stdConvert func(chunk string) ([]document.Node, error)

// LoadDocument 把整篇 Markdown 文本装载为文档节点序列
//
// 打开文件时的入口。图表围栏被摘出为 DiagramBlock，
// 其余文本由 goldmark 解析后直接构造为文档节点。
func LoadDocument(text string, opts ...Option) ([]Node, error) {
	options := applyOptions(opts...)
	return spliceDiagrams(text, options.Config, func(chunk string) ([]document.Node, error) {
		return converter.Convert(chunk), nil
	})
}

// ConvertSlice 把一段 Markdown 片段转换为可拼接的节点序列
//
// 粘贴事件的入口。非图表文本先渲染为 HTML 再导入为节点，
// 图表段的识别和 LoadDocument 完全一致：同一段文本在两条
// 路径下产出相同的图表块。
func ConvertSlice(text string, opts ...Option) ([]Node, error) {
	options := applyOptions(opts...)
	cfg := options.Config
	return spliceDiagrams(text, cfg, func(chunk string) ([]document.Node, error) {
		return convertViaHTML(chunk, cfg)
	})
}

// convertViaHTML Markdown → HTML → 节点序列
func convertViaHTML(chunk string, cfg *Config) ([]document.Node, error) {
	rendered, err := converter.RenderHTML(chunk)
	if err != nil {
		return nil, err
	}
	if cfg.SanitizeHTML {
		rendered = htmlconv.Sanitize(rendered)
	}
	return htmlconv.Import(rendered)
}

// spliceDiagrams 图表段拼接循环
//
// 先扫描出所有图表段，然后游标从左到右推进：段前的普通文本
// 交给 std 转换，段本身构造为 DiagramBlock，段与后续内容之间
// 插入一个空段落作为编辑落点。没有图表段时整段文本原样委托。
func spliceDiagrams(text string, cfg *Config, std stdConvert) ([]Node, error) {
	segments := ScanDiagrams(text)
	if len(segments) == 0 {
		return std(text)
	}

	var nodes []Node
	cursor := 0

	for i, seg := range segments {
		if before := text[cursor:seg.StartIndex]; strings.TrimSpace(before) != "" {
			converted, err := std(before)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, converted...)
		}

		nodes = append(nodes, &document.DiagramBlock{
			Kind:       seg.Kind,
			ViewMode:   cfg.DiagramViewMode,
			Theme:      cfg.DiagramTheme,
			SourceText: seg.Content,
		})

		// 空段落分隔符：不是最后一段，或末段之后还有内容
		trailing := strings.TrimSpace(text[seg.EndIndex:]) != ""
		if i < len(segments)-1 || trailing {
			nodes = append(nodes, &document.Paragraph{})
		}

		cursor = seg.EndIndex
	}

	if tail := text[cursor:]; strings.TrimSpace(tail) != "" {
		converted, err := std(tail)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, converted...)
	}

	return nodes, nil
}
