package entry

import "testing"

// demoTree 构建与演示程序相同的树，返回根目录与 bin 目录
func demoTree(t *testing.T) (*Directory, *Directory) {
	t.Helper()

	root := NewDirectory("root")
	bin := NewDirectory("bin")
	tmp := NewDirectory("tmp")
	usr := NewDirectory("usr")
	root.MustAdd(bin, tmp, usr)
	bin.MustAdd(MustNewFile("vi", 10000), MustNewFile("mongo", 20000))

	yuki := NewDirectory("yuki")
	hanako := NewDirectory("hanako")
	tomura := NewDirectory("tomura")
	usr.MustAdd(yuki, hanako, tomura)
	yuki.MustAdd(MustNewFile("diary.html", 100), MustNewFile("composite.java", 200))
	hanako.MustAdd(MustNewFile("index.html", 300))
	tomura.MustAdd(MustNewFile("game.txt", 400), MustNewFile("junk.mail", 500))

	return root, bin
}

// fileSizes 直接递归收集所有文件，不经过访问器
func fileSizes(e Entry) []int64 {
	switch v := e.(type) {
	case *File:
		return []int64{v.Size()}
	case *Directory:
		var out []int64
		for _, c := range v.children {
			out = append(out, fileSizes(c)...)
		}
		return out
	}
	return nil
}
