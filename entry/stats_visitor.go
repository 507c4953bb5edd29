package entry

import "fmt"

// Statistics 树的统计信息
type Statistics struct {
	TotalNodes     int   // 总节点数
	DirectoryCount int   // 目录数量
	FileCount      int   // 文件数量
	TotalSize      int64 // 总大小
	MaxDepth       int   // 最大深度，根节点为 0
}

// String 返回统计信息的字符串表示
func (s Statistics) String() string {
	return fmt.Sprintf("%d directories, %d files, %d total", s.DirectoryCount, s.FileCount, s.TotalSize)
}

// StatsVisitor 收集节点数量、大小与深度
type StatsVisitor struct {
	stats Statistics
	depth int
}

func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{}
}

func (sv *StatsVisitor) record() {
	sv.stats.TotalNodes++
	if sv.depth > sv.stats.MaxDepth {
		sv.stats.MaxDepth = sv.depth
	}
}

func (sv *StatsVisitor) VisitFile(f *File) error {
	sv.record()
	sv.stats.FileCount++
	sv.stats.TotalSize += f.Size()
	return nil
}

func (sv *StatsVisitor) VisitDirectory(d *Directory) error {
	sv.record()
	sv.stats.DirectoryCount++

	sv.depth++
	defer func() { sv.depth-- }()
	return VisitChildren(d, sv)
}

// Stats 返回统计结果
func (sv *StatsVisitor) Stats() Statistics {
	return sv.stats
}

// Stats 统计 root 子树
func Stats(root Entry) Statistics {
	if isNil(root) {
		return Statistics{}
	}
	sv := NewStatsVisitor()
	_ = root.Accept(sv)
	return sv.Stats()
}
