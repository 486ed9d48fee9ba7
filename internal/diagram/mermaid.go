package diagram

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Config Mermaid 渲染配置
type Config struct {
	Theme string `json:"theme"`
}

// DefaultTheme 默认主题标签
const DefaultTheme = "default"

// DefaultConfig 返回默认 Mermaid 配置
func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
	}
}

// compressToDeflate 使用 DEFLATE 算法压缩数据
func compressToDeflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err := writer.Write(data); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// safeBase64Encode URL-safe base64 编码
func safeBase64Encode(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

// GeneratePako 生成图表源码的 pako 状态串
//
// mermaid.live 与 mermaid.ink 共用这一 URL 片段格式。
func GeneratePako(source string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}

	graphData := map[string]interface{}{
		"code":    source,
		"mermaid": config,
	}

	jsonBytes, err := json.Marshal(graphData)
	if err != nil {
		return "", err
	}

	compressedData, err := compressToDeflate(jsonBytes)
	if err != nil {
		return "", err
	}

	base64Encoded := safeBase64Encode(compressedData)
	return fmt.Sprintf("pako:%s", base64Encoded), nil
}

// LiveEditURL 获取 Mermaid Live 编辑器 URL
// 编辑器壳层可把它挂在图表块的"在浏览器中编辑"入口上
func LiveEditURL(source string, config *Config) (string, error) {
	pako, err := GeneratePako(source, config)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.live/edit/#%s", pako), nil
}

// InkSVGURL 获取 mermaid.ink 的 SVG 渲染 URL
func InkSVGURL(source string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	pako, err := GeneratePako(source, config)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.ink/svg/%s?theme=%s", pako, config.Theme), nil
}

// InkImageURL 获取 mermaid.ink 的位图渲染 URL
func InkImageURL(source string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}
	pako, err := GeneratePako(source, config)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.ink/img/%s?theme=%s&width=500&scale=2&type=webp", pako, config.Theme), nil
}

// Fetch 下载渲染结果
func Fetch(ctx context.Context, url string, client *http.Client) (*bytes.Buffer, error) {
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch render result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read render result: %w", err)
	}

	return &buf, nil
}

// IsImage 检查数据是否为可解码的图片
//
// 通过注册的解码器（png/jpeg 来自标准库，webp 来自 x/image）
// 真正解码图片头，而不是只比对魔术字节。
func IsImage(data *bytes.Buffer) bool {
	if data.Len() == 0 {
		return false
	}
	_, _, err := image.DecodeConfig(bytes.NewReader(data.Bytes()))
	return err == nil
}

// RenderSVG 通过 mermaid.ink 把图表源码渲染为 SVG 文本
func RenderSVG(ctx context.Context, source string, config *Config, client *http.Client) (string, error) {
	svgURL, err := InkSVGURL(source, config)
	if err != nil {
		return "", err
	}

	data, err := Fetch(ctx, svgURL, client)
	if err != nil {
		return "", err
	}

	svg := data.String()
	if !bytes.Contains(data.Bytes(), []byte("<svg")) {
		return "", fmt.Errorf("render result is not an SVG document")
	}

	return svg, nil
}

// RenderImage 通过 mermaid.ink 把图表源码渲染为位图
// 返回图片数据和 Live 编辑器 URL
func RenderImage(ctx context.Context, source string, config *Config, client *http.Client) (*bytes.Buffer, string, error) {
	imgURL, err := InkImageURL(source, config)
	if err != nil {
		return nil, "", err
	}

	editURL, err := LiveEditURL(source, config)
	if err != nil {
		return nil, "", err
	}

	imgData, err := Fetch(ctx, imgURL, client)
	if err != nil {
		return nil, "", err
	}

	if !IsImage(imgData) {
		return nil, "", fmt.Errorf("downloaded data is not a valid image")
	}

	return imgData, editURL, nil
}
