package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 在终端中渲染 markdown
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建渲染器。style 为空时根据终端自动选择样式
func NewMarkdownRenderer(style string) (*MarkdownRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return nil, fmt.Errorf("init markdown renderer: %w", err)
	}
	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染 content 并写入 w，渲染失败时写入原始内容
func (m *MarkdownRenderer) Render(w io.Writer, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		_, werr := io.WriteString(w, content)
		return werr
	}

	for strings.Contains(rendered, "\n\n\n") {
		rendered = strings.ReplaceAll(rendered, "\n\n\n", "\n\n")
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, err = io.WriteString(w, rendered)
	return err
}
