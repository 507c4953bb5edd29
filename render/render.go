// Package render 把树输出为文本、markdown 或 PDF
package render

import (
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
)

// Lines 返回 ListVisitor 对 root 的完整输出
func Lines(root entry.Entry) ([]string, error) {
	var out entry.LineCollector
	if err := root.Accept(entry.NewListVisitor(&out)); err != nil {
		return nil, err
	}
	return out.Lines(), nil
}

// TreeLines 返回树状图的每一行
func TreeLines(root entry.Entry, opts entry.TreeOptions) ([]string, error) {
	var out entry.LineCollector
	if err := root.Accept(entry.NewTreeVisitor(&out, opts)); err != nil {
		return nil, err
	}
	return out.Lines(), nil
}

// StatsLines 按当前语言输出统计信息
func StatsLines(s entry.Statistics) []string {
	p := lang.Printer()
	return []string{
		p.Sprintf("%s: %d", lang.T("Total nodes"), s.TotalNodes),
		p.Sprintf("%s: %d", lang.T("Directories"), s.DirectoryCount),
		p.Sprintf("%s: %d", lang.T("Files"), s.FileCount),
		p.Sprintf("%s: %s", lang.T("Total size"), lang.FormatSize(s.TotalSize)),
		p.Sprintf("%s: %d", lang.T("Max depth"), s.MaxDepth),
	}
}
