package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjzsdu/entrytree/config"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/logger"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Exporter 把一棵树写出为某种文档格式
type Exporter interface {
	Export(w io.Writer) error
}

// GetExporter 根据输出文件扩展名返回对应的导出器
func GetExporter(root *entry.Directory, outputFile string) (Exporter, error) {
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".txt", "":
		return &TextExporter{root: root}, nil
	case ".md":
		return &MarkdownExporter{root: root}, nil
	case ".pdf":
		return &PDFExporter{root: root, FontPath: config.GetConfig(config.KeyPDFFont)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(outputFile))
	}
}

// Output 将树导出到 outputFile，导出失败时删除已创建的文件
func Output(root *entry.Directory, outputFile string) error {
	exporter, err := GetExporter(root, outputFile)
	if err != nil {
		return err
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	if err := exporter.Export(f); err != nil {
		f.Close()
		os.Remove(outputFile)
		return fmt.Errorf("export to %s: %w", outputFile, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(outputFile)
		return err
	}

	logger.L().Info("tree exported", zap.String("file", outputFile), zap.String("root", root.Name()))
	return nil
}

// TextExporter 每行一个条目，格式与 ListVisitor 相同
type TextExporter struct {
	root *entry.Directory
}

func (e *TextExporter) Export(w io.Writer) error {
	return e.root.Accept(entry.NewListVisitor(entry.NewWriterSink(w)))
}

// MarkdownExporter 输出带表格、树状图与统计信息的 markdown 文档
type MarkdownExporter struct {
	root *entry.Directory
}

func (e *MarkdownExporter) Export(w io.Writer) error {
	doc, err := Markdown(e.root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// Markdown 生成 markdown 文档
func Markdown(root *entry.Directory) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", root.Name())

	sb.WriteString("| Path | Size |\n|------|-----:|\n")
	err := entry.Walk(root, entry.WalkFunc(func(path string, e entry.Entry, depth int) error {
		if _, ok := e.(*entry.Directory); ok {
			path += "/"
		}
		_, err := fmt.Fprintf(&sb, "| `%s` | %d |\n", path, e.Size())
		return err
	}))
	if err != nil {
		return "", err
	}

	tree, err := TreeLines(root, entry.DefaultTreeOptions())
	if err != nil {
		return "", err
	}
	sb.WriteString("\n## Tree\n\n```text\n")
	for _, line := range tree {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("```\n\n## Statistics\n\n")
	for _, line := range StatsLines(entry.Stats(root)) {
		sb.WriteString("- " + line + "\n")
	}
	return sb.String(), nil
}

// ErrUnencodable 表示内置 PDF 字体无法表示某个名称
var ErrUnencodable = errors.New("text not representable in built-in PDF font")

// PDFExporter 使用等宽字体逐行输出列表。
// FontPath 为空时使用内置的 cp1252 字体，遇到无法编码的名称返回 ErrUnencodable；
// 设置为 TTF 文件后按 UTF-8 输出。
type PDFExporter struct {
	root     *entry.Directory
	FontPath string
}

func (e *PDFExporter) Export(w io.Writer) error {
	lines, err := Lines(e.root)
	if err != nil {
		return err
	}
	title := e.root.Name()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("entrytree", true)

	titleFont, lineFont := "Helvetica", "Courier"
	tr := func(s string) string { return s }
	if e.FontPath != "" {
		pdf.AddUTF8Font("entry", "", e.FontPath)
		pdf.AddUTF8Font("entry", "B", e.FontPath)
		titleFont, lineFont = "entry", "entry"
	} else {
		for _, s := range append([]string{title}, lines...) {
			if err := encodable(s); err != nil {
				return err
			}
		}
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	pdf.SetFont(titleFont, "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(lineFont, "", 9)
	for _, line := range lines {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func encodable(s string) error {
	if _, err := charmap.Windows1252.NewEncoder().String(s); err != nil {
		return fmt.Errorf("%w: %q (set %s to a TTF font)", ErrUnencodable, s, config.GetEnvKey(config.KeyPDFFont))
	}
	return nil
}
