package entry

import (
	"errors"
	"fmt"
)

// TraverseOrder 定义遍历顺序
type TraverseOrder int

const (
	PreOrder  TraverseOrder = iota // 前序遍历
	PostOrder                      // 后序遍历
)

// SkipDir 由 PathVisitor.VisitDirectory 返回时跳过该目录的子节点（仅前序遍历有效）
var SkipDir = errors.New("skip this directory")

// PathVisitor 是带路径和深度信息的访问器，由 Walk 驱动
type PathVisitor interface {
	VisitDirectory(d *Directory, path string, depth int) error
	VisitFile(f *File, path string, depth int) error
}

// WalkFunc 定义了访问节点的函数类型
type WalkFunc func(path string, e Entry, depth int) error

// VisitFile 实现 PathVisitor 接口
func (fn WalkFunc) VisitFile(f *File, path string, depth int) error {
	return fn(path, f, depth)
}

// VisitDirectory 实现 PathVisitor 接口
func (fn WalkFunc) VisitDirectory(d *Directory, path string, depth int) error {
	return fn(path, d, depth)
}

type FilteredVisitor struct {
	Visitor    PathVisitor                          // 实际的访问器
	FileFilter func(f *File, path string) bool      // 文件过滤函数
	DirFilter  func(d *Directory, path string) bool // 目录过滤函数，返回 false 时跳过整棵子树
}

// VisitDirectory 实现 PathVisitor 接口
func (fv *FilteredVisitor) VisitDirectory(d *Directory, path string, depth int) error {
	if fv.DirFilter != nil && !fv.DirFilter(d, path) {
		return SkipDir
	}
	return fv.Visitor.VisitDirectory(d, path, depth)
}

// VisitFile 实现 PathVisitor 接口
func (fv *FilteredVisitor) VisitFile(f *File, path string, depth int) error {
	if fv.FileFilter != nil && !fv.FileFilter(f, path) {
		return nil // 跳过此文件
	}
	return fv.Visitor.VisitFile(f, path, depth)
}

// WalkOption 定义遍历选项
type WalkOption func(*walker)

// WithOrder 设置遍历顺序
func WithOrder(order TraverseOrder) WalkOption {
	return func(w *walker) { w.order = order }
}

// WithContinueOnError 遇到错误时继续遍历，最后返回合并后的错误
func WithContinueOnError() WalkOption {
	return func(w *walker) { w.continueOnError = true }
}

// WithMaxDepth 限制遍历深度，根节点深度为 0，负数表示不限制
func WithMaxDepth(depth int) WalkOption {
	return func(w *walker) { w.maxDepth = depth }
}

// walker 把 PathVisitor 适配成 Visitor，路径和深度在递归前后保存与恢复
type walker struct {
	visitor         PathVisitor
	order           TraverseOrder
	continueOnError bool
	maxDepth        int

	path  string
	depth int
	errs  []error
}

// Walk 从 root 开始遍历整棵树。root 的路径为 "/<name>"，深度为 0
func Walk(root Entry, pv PathVisitor, opts ...WalkOption) error {
	if isNil(root) {
		return nil
	}
	w := &walker{visitor: pv, order: PreOrder, maxDepth: -1}
	for _, opt := range opts {
		opt(w)
	}

	w.path = "/" + root.Name()
	if err := root.Accept(w); err != nil {
		return err
	}
	if len(w.errs) > 0 {
		return fmt.Errorf("%d errors during traversal: %w", len(w.errs), errors.Join(w.errs...))
	}
	return nil
}

func (w *walker) fail(e Entry, err error) error {
	terr := &TraverseError{Path: w.path, NodeName: e.Name(), Err: err}
	if w.continueOnError {
		w.errs = append(w.errs, terr)
		return nil
	}
	return terr
}

func (w *walker) VisitFile(f *File) error {
	if err := w.visitor.VisitFile(f, w.path, w.depth); err != nil {
		return w.fail(f, err)
	}
	return nil
}

func (w *walker) VisitDirectory(d *Directory) error {
	if w.order == PreOrder {
		err := w.visitor.VisitDirectory(d, w.path, w.depth)
		if errors.Is(err, SkipDir) {
			return nil
		}
		if err != nil {
			if ferr := w.fail(d, err); ferr != nil {
				return ferr
			}
		}
	}

	if w.maxDepth < 0 || w.depth < w.maxDepth {
		if err := w.descend(d); err != nil {
			return err
		}
	}

	if w.order == PostOrder {
		err := w.visitor.VisitDirectory(d, w.path, w.depth)
		if err != nil && !errors.Is(err, SkipDir) {
			return w.fail(d, err)
		}
	}
	return nil
}

func (w *walker) descend(d *Directory) error {
	savePath, saveDepth := w.path, w.depth
	defer func() { w.path, w.depth = savePath, saveDepth }()

	for _, child := range d.children {
		w.path = savePath + "/" + child.Name()
		w.depth = saveDepth + 1
		if err := child.Accept(w); err != nil {
			return err
		}
	}
	return nil
}
