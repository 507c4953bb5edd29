package entry

func (f *File) Name() string { return f.name }

func (f *File) Size() int64 { return f.size }

// Add 文件不能包含子节点
func (f *File) Add(child Entry) (Entry, error) {
	return nil, unsupported("add", f)
}

// Entries 文件没有子节点可供迭代
func (f *File) Entries() ([]Entry, error) {
	return nil, unsupported("iterate", f)
}

func (f *File) Accept(v Visitor) error {
	return v.VisitFile(f)
}

func (f *File) Parent() *Directory { return f.parent }

func (f *File) Path() string { return pathOf(f.name, f.parent) }

func (f *File) String() string { return describe(f) }

func (f *File) setParent(d *Directory) { f.parent = d }
