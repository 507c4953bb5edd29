package source

import (
	"fmt"
	"io"

	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
)

// Demo 是演示程序使用的固定目录树
type Demo struct {
	Root *entry.Directory
	Bin  *entry.Directory
	Tmp  *entry.Directory
	Usr  *entry.Directory
}

// NewDemo 创建 root/{bin,tmp,usr}，bin 中包含 vi 与 mongo
func NewDemo() *Demo {
	d := &Demo{
		Root: entry.NewDirectory("root"),
		Bin:  entry.NewDirectory("bin"),
		Tmp:  entry.NewDirectory("tmp"),
		Usr:  entry.NewDirectory("usr"),
	}
	d.Root.MustAdd(d.Bin, d.Tmp, d.Usr)
	d.Bin.MustAdd(
		entry.MustNewFile("vi", 10000),
		entry.MustNewFile("mongo", 20000),
	)
	return d
}

// AddUserEntries 在 usr 下添加 yuki、hanako、tomura 及其文件
func (d *Demo) AddUserEntries() {
	yuki := entry.NewDirectory("yuki")
	hanako := entry.NewDirectory("hanako")
	tomura := entry.NewDirectory("tomura")
	d.Usr.MustAdd(yuki, hanako, tomura)

	yuki.MustAdd(
		entry.MustNewFile("diary.html", 100),
		entry.MustNewFile("composite.java", 200),
	)
	hanako.MustAdd(entry.MustNewFile("index.html", 300))
	tomura.MustAdd(
		entry.MustNewFile("game.txt", 400),
		entry.MustNewFile("junk.mail", 500),
	)
}

// DemoTree 返回完整的演示树
func DemoTree() *entry.Directory {
	d := NewDemo()
	d.AddUserEntries()
	return d.Root
}

// RunDemo 分两步构建演示树并列出，最后查找 HTML 文件
func RunDemo(w io.Writer) error {
	sink := entry.NewWriterSink(w)

	if err := sink.WriteLine(lang.T("Making root entries...")); err != nil {
		return err
	}
	d := NewDemo()
	if err := d.Root.Accept(entry.NewListVisitor(sink)); err != nil {
		return err
	}

	if err := sink.WriteLine(""); err != nil {
		return err
	}
	if err := sink.WriteLine(lang.T("Making user entries...")); err != nil {
		return err
	}
	d.AddUserEntries()
	if err := d.Root.Accept(entry.NewListVisitor(sink)); err != nil {
		return err
	}

	if err := sink.WriteLine(lang.T("HTML files are:")); err != nil {
		return err
	}
	ffv := entry.NewFileFindVisitor(entry.NameContains(".html"))
	if err := d.Root.Accept(ffv); err != nil {
		return err
	}
	for _, f := range ffv.FoundFiles() {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}
