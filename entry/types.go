package entry

import "fmt"

// Entry 是树中的节点，只有 *File 和 *Directory 两种实现
type Entry interface {
	// Name 返回节点名称
	Name() string
	// Size 返回文件大小，目录为所有子文件大小之和
	Size() int64
	// Add 向目录追加子节点并返回目录本身，文件上调用返回 ErrUnsupportedOperation
	Add(child Entry) (Entry, error)
	// Entries 返回子节点副本，文件上调用返回 ErrUnsupportedOperation
	Entries() ([]Entry, error)
	// Accept 把当前节点交给访问器处理
	Accept(v Visitor) error
	// Parent 返回所属目录，根节点返回 nil
	Parent() *Directory
	// Path 返回从根开始的路径，如 /root/usr/yuki
	Path() string
	String() string

	setParent(d *Directory)
}

// File 叶子节点，大小在创建时确定
type File struct {
	name   string
	size   int64
	parent *Directory
}

// Directory 容器节点，独占其子节点并保持插入顺序
type Directory struct {
	name     string
	children []Entry
	parent   *Directory
}

// NewFile 创建文件节点
func NewFile(name string, size int64) (*File, error) {
	if size < 0 {
		return nil, fmt.Errorf("file %q size %d: %w", name, size, ErrNegativeSize)
	}
	return &File{name: name, size: size}, nil
}

// MustNewFile 与 NewFile 相同，出错时 panic，用于硬编码的树
func MustNewFile(name string, size int64) *File {
	f, err := NewFile(name, size)
	if err != nil {
		panic(err)
	}
	return f
}

// NewDirectory 创建空目录
func NewDirectory(name string) *Directory {
	return &Directory{name: name}
}

func describe(e Entry) string {
	return fmt.Sprintf("%s (%d)", e.Name(), e.Size())
}

func pathOf(name string, parent *Directory) string {
	if parent == nil {
		return "/" + name
	}
	return parent.Path() + "/" + name
}
