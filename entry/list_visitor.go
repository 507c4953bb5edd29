package entry

// ListVisitor 按前序输出每个节点的 "<路径>/<名称> (<大小>)"
type ListVisitor struct {
	sink       LineWriter
	currentDir string // 当前正在访问的目录路径
}

func NewListVisitor(sink LineWriter) *ListVisitor {
	return &ListVisitor{sink: sink}
}

func (lv *ListVisitor) VisitFile(f *File) error {
	return lv.sink.WriteLine(lv.currentDir + "/" + f.String())
}

func (lv *ListVisitor) VisitDirectory(d *Directory) error {
	if err := lv.sink.WriteLine(lv.currentDir + "/" + d.String()); err != nil {
		return err
	}
	saveDir := lv.currentDir
	lv.currentDir += "/" + d.Name()
	defer func() { lv.currentDir = saveDir }()

	return VisitChildren(d, lv)
}
