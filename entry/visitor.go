package entry

// Visitor 定义了节点访问器的接口
type Visitor interface {
	// VisitFile 访问文件节点
	VisitFile(f *File) error
	// VisitDirectory 访问目录节点，需要继续向下时调用 VisitChildren
	VisitDirectory(d *Directory) error
}

// VisitChildren 按插入顺序让每个子节点接受访问器，遇到第一个错误即停止
func VisitChildren(d *Directory, v Visitor) error {
	for _, child := range d.children {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

// VisitorFuncs 用函数组装访问器。Directory 为 nil 时直接递归子节点
type VisitorFuncs struct {
	File      func(f *File) error
	Directory func(d *Directory) error
}

// VisitFile 实现 Visitor 接口
func (fs VisitorFuncs) VisitFile(f *File) error {
	if fs.File == nil {
		return nil
	}
	return fs.File(f)
}

// VisitDirectory 实现 Visitor 接口。Directory 函数负责自行调用 VisitChildren
func (fs VisitorFuncs) VisitDirectory(d *Directory) error {
	if fs.Directory == nil {
		return VisitChildren(d, fs)
	}
	return fs.Directory(d)
}
