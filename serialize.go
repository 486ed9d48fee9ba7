package richmd

import (
	"github.com/riverfjs/richmd-go/internal/htmlconv"
	"github.com/riverfjs/richmd-go/internal/serializer"
)

// Serialize 把文档节点序列还原为 Markdown 文本
//
// 保存文件和复制选区共用这条路径。图表块按对称规则重新生成
// mermaid 围栏，保证写出的文本再次装载时识别出同一个图表段。
func Serialize(nodes ...Node) string {
	return serializer.Serialize(nodes...)
}

// ExportHTML 把文档节点序列导出为 HTML 字符串
//
// 复制适配器用它生成剪贴板的富文本表示；图表块导出为
// mermaid.js 可直接水合的 <div class="mermaid"> 容器。
func ExportHTML(nodes ...Node) string {
	return htmlconv.Export(nodes)
}
