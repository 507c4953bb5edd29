package entry

import (
	"fmt"
	"io"
)

// LineWriter 是 ListVisitor 等访问器唯一依赖的输出能力
type LineWriter interface {
	WriteLine(line string) error
}

// WriterSink 把每一行写入 io.Writer 并追加换行
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// LineCollector 在内存中收集输出行
type LineCollector struct {
	lines []string
}

func (c *LineCollector) WriteLine(line string) error {
	c.lines = append(c.lines, line)
	return nil
}

// Lines 返回已收集的行
func (c *LineCollector) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reset 清空已收集的行
func (c *LineCollector) Reset() {
	c.lines = c.lines[:0]
}
