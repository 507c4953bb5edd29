package entry

import "fmt"

func (d *Directory) Name() string { return d.name }

// Size 每次调用都用新的 SizeVisitor 重新计算，不做缓存
func (d *Directory) Size() int64 {
	sv := NewSizeVisitor()
	// SizeVisitor 不会返回错误
	_ = d.Accept(sv)
	return sv.Size()
}

// Add 追加子节点。被拒绝时目录和子节点都保持原样
func (d *Directory) Add(child Entry) (Entry, error) {
	if isNil(child) {
		return nil, ErrNilEntry
	}
	if child.Parent() != nil {
		return nil, fmt.Errorf("add %q to %q: %w", child.Name(), d.name, ErrAlreadyAttached)
	}
	if sub, ok := child.(*Directory); ok {
		for p := d; p != nil; p = p.parent {
			if p == sub {
				return nil, fmt.Errorf("add %q to %q: %w", child.Name(), d.name, ErrCycle)
			}
		}
	}

	child.setParent(d)
	d.children = append(d.children, child)
	return d, nil
}

// MustAdd 依次添加子节点，任何一次失败都会 panic
func (d *Directory) MustAdd(children ...Entry) *Directory {
	for _, c := range children {
		if _, err := d.Add(c); err != nil {
			panic(err)
		}
	}
	return d
}

// Entries 返回子节点的副本，修改副本不影响目录
func (d *Directory) Entries() ([]Entry, error) {
	return d.Children(), nil
}

// Children 与 Entries 相同，但不返回错误
func (d *Directory) Children() []Entry {
	children := make([]Entry, len(d.children))
	copy(children, d.children)
	return children
}

// Len 返回直接子节点数量
func (d *Directory) Len() int { return len(d.children) }

func (d *Directory) Accept(v Visitor) error {
	return v.VisitDirectory(d)
}

func (d *Directory) Parent() *Directory { return d.parent }

func (d *Directory) Path() string { return pathOf(d.name, d.parent) }

func (d *Directory) String() string { return describe(d) }

func (d *Directory) setParent(p *Directory) { d.parent = p }

func isNil(e Entry) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *File:
		return v == nil
	case *Directory:
		return v == nil
	}
	return false
}
