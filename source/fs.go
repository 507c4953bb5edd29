package source

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/logger"
	"go.uber.org/zap"
)

// FSOptions 控制从文件系统构建树
type FSOptions struct {
	RootName      string // 根目录名称，为空时取 name 的最后一段
	IncludeHidden bool   // 是否包含以 . 开头的条目
	MaxDepth      int    // 最大深度，<= 0 表示不限制；根目录深度为 0
}

// FromFS 从 fsys 中的 name 目录构建树。子节点按 fs.ReadDir 的顺序（名称排序）加入
func FromFS(fsys fs.FS, name string, opts FSOptions) (*entry.Directory, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", name, entry.ErrUnsupportedOperation)
	}

	rootName := opts.RootName
	if rootName == "" {
		rootName = path.Base(name)
	}
	root := entry.NewDirectory(rootName)
	if err := buildDir(fsys, name, root, 0, opts); err != nil {
		return nil, err
	}

	logger.L().Debug("tree loaded from filesystem",
		zap.String("root", name),
		zap.Int64("size", root.Size()),
	)
	return root, nil
}

func buildDir(fsys fs.FS, dirPath string, dir *entry.Directory, depth int, opts FSOptions) error {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	items, err := fs.ReadDir(fsys, dirPath)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dirPath, err)
	}

	for _, item := range items {
		if !opts.IncludeHidden && strings.HasPrefix(item.Name(), ".") {
			continue
		}
		childPath := path.Join(dirPath, item.Name())

		var child entry.Entry
		if item.IsDir() {
			sub := entry.NewDirectory(item.Name())
			if err := buildDir(fsys, childPath, sub, depth+1, opts); err != nil {
				return err
			}
			child = sub
		} else {
			info, err := item.Info()
			if err != nil {
				return fmt.Errorf("stat %s: %w", childPath, err)
			}
			f, err := entry.NewFile(item.Name(), info.Size())
			if err != nil {
				return err
			}
			child = f
		}

		if _, err := dir.Add(child); err != nil {
			return err
		}
	}
	return nil
}
