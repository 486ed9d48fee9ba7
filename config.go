package richmd

import "sync"

// Config 转换行为配置
type Config struct {
	// DiagramViewMode 新建图表块的初始显示模式
	DiagramViewMode ViewMode
	// DiagramTheme 新建图表块的渲染主题
	DiagramTheme Theme
	// SanitizeHTML 粘贴路径是否对 HTML 中间表示做白名单清洗
	SanitizeHTML bool
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default conversion configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{
			DiagramViewMode: ViewPreview,
			DiagramTheme:    ThemeDefault,
			SanitizeHTML:    true,
		}
	})
	return defaultConfig
}
