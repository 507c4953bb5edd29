package entry

// TreeOptions 控制树状输出
type TreeOptions struct {
	ShowFiles bool // 是否显示文件
	MaxDepth  int  // 最大深度，<= 0 表示不限制；根节点深度为 0
}

// DefaultTreeOptions 显示全部文件，不限制深度
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{ShowFiles: true}
}

// TreeVisitor 生成类似 Unix tree 命令的输出，保持插入顺序。
// 第一次被 Accept 的节点视为树根，该次遍历结束后状态复位，同一个 visitor 可以重复使用。
type TreeVisitor struct {
	sink    LineWriter
	opts    TreeOptions
	prefix  string
	isLast  bool
	depth   int
	started bool
}

func NewTreeVisitor(sink LineWriter, opts TreeOptions) *TreeVisitor {
	return &TreeVisitor{sink: sink, opts: opts}
}

func (tv *TreeVisitor) branch() string {
	if !tv.started {
		tv.started = true
		return ""
	}
	if tv.isLast {
		return tv.prefix + "└── "
	}
	return tv.prefix + "├── "
}

// reset 在根节点的访问结束时调用
func (tv *TreeVisitor) reset() {
	tv.started, tv.prefix, tv.isLast, tv.depth = false, "", false, 0
}

func (tv *TreeVisitor) VisitFile(f *File) error {
	if !tv.started {
		defer tv.reset()
	}
	return tv.sink.WriteLine(tv.branch() + f.String())
}

func (tv *TreeVisitor) VisitDirectory(d *Directory) error {
	isRoot := !tv.started
	if isRoot {
		defer tv.reset()
	}
	if err := tv.sink.WriteLine(tv.branch() + d.Name() + "/"); err != nil {
		return err
	}
	if tv.opts.MaxDepth > 0 && tv.depth+1 >= tv.opts.MaxDepth {
		return nil
	}

	children := d.children
	if !tv.opts.ShowFiles {
		children = make([]Entry, 0, len(d.children))
		for _, c := range d.children {
			if _, ok := c.(*Directory); ok {
				children = append(children, c)
			}
		}
	}

	savePrefix, saveLast := tv.prefix, tv.isLast
	defer func() {
		tv.prefix, tv.isLast = savePrefix, saveLast
		tv.depth--
	}()

	switch {
	case isRoot:
		tv.prefix = ""
	case saveLast:
		tv.prefix = savePrefix + "    "
	default:
		tv.prefix = savePrefix + "│   "
	}
	tv.depth++

	childPrefix := tv.prefix
	for i, child := range children {
		tv.prefix = childPrefix
		tv.isLast = i == len(children)-1
		if err := child.Accept(tv); err != nil {
			return err
		}
	}
	return nil
}
