package entry

import (
	"fmt"
	"strings"
)

// Lookup 在 root 下按斜杠路径查找节点。
// "" 与 "/" 返回 root 本身，其余路径都相对 root 解析。以 "/<root 名称>" 开头的
// 绝对路径只在 root 没有同名子节点时才去掉该段，因此 "/root/usr" 与 "usr" 等价，
// 而 root 下名为 root 的子目录仍可通过 "/root" 访问。".." 回到上一级，但不会越过 root。同名节点取第一个。
func Lookup(root *Directory, p string) (Entry, error) {
	segments := splitPath(p)
	if len(segments) > 0 && strings.HasPrefix(p, "/") && segments[0] == root.Name() && root.child(segments[0]) == nil {
		segments = segments[1:]
	}

	var current Entry = root
	for _, seg := range segments {
		if seg == ".." {
			if current != Entry(root) {
				current = current.Parent()
			}
			continue
		}
		dir, ok := current.(*Directory)
		if !ok {
			return nil, fmt.Errorf("lookup %q: %w", p, unsupported("descend", current))
		}
		next := dir.child(seg)
		if next == nil {
			return nil, fmt.Errorf("lookup %q: %q in %s: %w", p, seg, dir.Path(), ErrNotFound)
		}
		current = next
	}
	return current, nil
}

func (d *Directory) child(name string) Entry {
	for _, c := range d.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func splitPath(p string) []string {
	p = strings.ReplaceAll(p, "\\", "/")
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}
