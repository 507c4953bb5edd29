package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/logger"
	"go.uber.org/zap"
)

// FromGit 读取 repoPath 仓库中 revision 对应的提交树，revision 为空时使用 HEAD。
// 文件大小取 blob 大小，子模块被跳过
func FromGit(ctx context.Context, repoPath, revision string) (*entry.Directory, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	if revision == "" {
		revision = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %s: %w", revision, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("read tree of %s: %w", hash, err)
	}

	name := filepath.Base(repoPath)
	if abs, err := filepath.Abs(repoPath); err == nil {
		name = filepath.Base(abs)
	}
	root := entry.NewDirectory(name)
	if err := buildGitDir(ctx, repo, tree, root); err != nil {
		return nil, err
	}

	logger.L().Debug("tree loaded from git",
		zap.String("repository", repoPath),
		zap.String("revision", revision),
		zap.String("commit", hash.String()),
	)
	return root, nil
}

func buildGitDir(ctx context.Context, repo *git.Repository, tree *object.Tree, dir *entry.Directory) error {
	for _, te := range tree.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		var child entry.Entry
		switch te.Mode {
		case filemode.Submodule:
			continue
		case filemode.Dir:
			sub, err := repo.TreeObject(te.Hash)
			if err != nil {
				return fmt.Errorf("read tree %s: %w", te.Name, err)
			}
			d := entry.NewDirectory(te.Name)
			if err := buildGitDir(ctx, repo, sub, d); err != nil {
				return err
			}
			child = d
		default:
			blob, err := repo.BlobObject(te.Hash)
			if err != nil {
				return fmt.Errorf("read blob %s: %w", te.Name, err)
			}
			f, err := entry.NewFile(te.Name, blob.Size)
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

// CloneRepository 克隆仓库到临时目录并返回路径，调用方负责清理
func CloneRepository(ctx context.Context, url string) (string, error) {
	tempDir, err := os.MkdirTemp("", "entrytree-clone-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	_, err = git.PlainCloneContext(ctx, tempDir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		os.RemoveAll(tempDir)
		return "", fmt.Errorf("clone %s: %w", url, err)
	}

	logger.S().Debugw("repository cloned", "url", url, "dir", tempDir)
	return tempDir, nil
}
