package richmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/riverfjs/richmd-go/internal/diagram"
)

// RenderResult 图表渲染产物
type RenderResult struct {
	// InstanceID 本次渲染对应的预览实例标识
	InstanceID string
	// SVG 渲染出的 SVG 文档
	SVG string
}

// RenderError 渲染失败
//
// 携带出错实例的标识和原始源码：渲染失败不是数据损失，
// 编辑面拿到错误后图表块的 SourceText 仍然完整可编辑。
type RenderError struct {
	InstanceID string
	SourceText string
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("diagram render failed (instance %s): %v", e.InstanceID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer 图表渲染后端
//
// 转换核心只负责把图表源码装进 DiagramBlock，渲染由编辑面
// 通过这个界面异步触发，渲染与转换互不阻塞。
type Renderer interface {
	Render(ctx context.Context, sourceText string, instanceID string, theme Theme) (*RenderResult, error)
}

// InkRenderer 默认的进程外渲染后端，走 mermaid.ink 服务
type InkRenderer struct {
	// Client 可选的自定义 HTTP 客户端，nil 时使用内置超时客户端
	Client *http.Client
}

// Render 把图表源码渲染为 SVG
func (r *InkRenderer) Render(ctx context.Context, sourceText string, instanceID string, theme Theme) (*RenderResult, error) {
	svg, err := diagram.RenderSVG(ctx, sourceText, &diagram.Config{Theme: string(theme)}, r.Client)
	if err != nil {
		return nil, &RenderError{
			InstanceID: instanceID,
			SourceText: sourceText,
			Err:        err,
		}
	}

	return &RenderResult{
		InstanceID: instanceID,
		SVG:        svg,
	}, nil
}

// NewDiagramInstanceID 生成图表预览实例的唯一标识
//
// 同一个图表块每次进入预览都分配新实例，编辑面据此丢弃
// 过期的异步渲染结果。
func NewDiagramInstanceID() string {
	return "diagram-" + uuid.NewString()
}

// DiagramEditURL 生成图表源码的 mermaid.live 在线编辑链接
func DiagramEditURL(sourceText string, theme Theme) (string, error) {
	return diagram.LiveEditURL(sourceText, &diagram.Config{Theme: string(theme)})
}
