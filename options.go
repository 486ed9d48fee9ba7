package richmd

// ConvertOptions holds options for document conversion.
type ConvertOptions struct {
	Config *Config
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithViewMode sets the initial view mode for converted diagram blocks.
func WithViewMode(mode ViewMode) Option {
	return func(opts *ConvertOptions) {
		opts.Config.DiagramViewMode = mode
	}
}

// WithTheme sets the render theme for converted diagram blocks.
func WithTheme(theme Theme) Option {
	return func(opts *ConvertOptions) {
		opts.Config.DiagramTheme = theme
	}
}

// WithSanitize sets whether the paste path sanitizes intermediate HTML.
func WithSanitize(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.SanitizeHTML = enable
	}
}

// WithConfig sets a custom Config, replacing the defaults entirely.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// defaultConvertOptions returns the default conversion options.
//
// 默认配置是共享单例，这里拷贝一份再交给 Option 修改。
func defaultConvertOptions() *ConvertOptions {
	cfg := *DefaultConfig()
	return &ConvertOptions{
		Config: &cfg,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
