package entry

// SizeVisitor 累加所访问子树中所有文件的大小，目录本身不计大小
type SizeVisitor struct {
	size int64
}

func NewSizeVisitor() *SizeVisitor {
	return &SizeVisitor{}
}

func (sv *SizeVisitor) VisitFile(f *File) error {
	sv.size += f.Size()
	return nil
}

func (sv *SizeVisitor) VisitDirectory(d *Directory) error {
	return VisitChildren(d, sv)
}

// Size 返回累计大小，只在完整遍历结束后有意义
func (sv *SizeVisitor) Size() int64 {
	return sv.size
}
