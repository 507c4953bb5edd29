package source

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sjzsdu/entrytree/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"project/README.md":           {Data: []byte("# readme")},
		"project/src/main.go":         {Data: []byte("package main\n")},
		"project/src/utils/helper.go": {Data: []byte("package utils")},
		"project/docs/api.md":         {Data: []byte("api")},
		"project/.gitignore":          {Data: []byte("*.log")},
		"project/.git/HEAD":           {Data: []byte("ref: refs/heads/main")},
	}
}

func listing(t *testing.T, root entry.Entry) []string {
	t.Helper()
	var out entry.LineCollector
	require.NoError(t, root.Accept(entry.NewListVisitor(&out)))
	return out.Lines()
}

func TestFromFS(t *testing.T) {
	root, err := FromFS(testFS(), "project", FSOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/project (37)",
		"/project/README.md (8)",
		"/project/docs (3)",
		"/project/docs/api.md (3)",
		"/project/src (26)",
		"/project/src/main.go (13)",
		"/project/src/utils (13)",
		"/project/src/utils/helper.go (13)",
	}, listing(t, root))
}

func TestFromFSOptions(t *testing.T) {
	root, err := FromFS(testFS(), "project", FSOptions{RootName: "repo", IncludeHidden: true, MaxDepth: 1})
	require.NoError(t, err)

	assert.Equal(t, "repo", root.Name())
	names := []string{}
	for _, c := range root.Children() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{".git", ".gitignore", "README.md", "docs", "src"}, names)

	src, err := entry.Lookup(root, "src")
	require.NoError(t, err)
	assert.Equal(t, 0, src.(*entry.Directory).Len())
}

func TestFromFSErrors(t *testing.T) {
	_, err := FromFS(testFS(), "missing", FSOptions{})
	assert.Error(t, err)

	_, err = FromFS(testFS(), "project/README.md", FSOptions{})
	assert.ErrorIs(t, err, entry.ErrUnsupportedOperation)
}

func TestFromFSDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin", "vi"), make([]byte, 100), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	root, err := FromFS(os.DirFS(dir), ".", FSOptions{RootName: "root"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/root (102)",
		"/root/bin (100)",
		"/root/bin/vi (100)",
		"/root/notes.txt (2)",
	}, listing(t, root))
}
