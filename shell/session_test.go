package shell

import (
	"bytes"
	"testing"

	"github.com/c-bata/go-prompt"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	lang.SetLanguage("en")
	var buf bytes.Buffer
	return NewSession(source.DemoTree(), &buf), &buf
}

func run(t *testing.T, s *Session, buf *bytes.Buffer, line string) string {
	t.Helper()
	buf.Reset()
	require.NoError(t, s.Execute(line))
	return buf.String()
}

func TestNavigation(t *testing.T) {
	s, buf := newTestSession(t)

	assert.Equal(t, "/\n", run(t, s, buf, "pwd"))
	assert.Equal(t, "bin/\ntmp/\nusr/\n", run(t, s, buf, "ls"))

	run(t, s, buf, "cd usr/yuki")
	assert.Equal(t, "/usr/yuki\n", run(t, s, buf, "pwd"))
	assert.Equal(t, "diary.html (100)\ncomposite.java (200)\n", run(t, s, buf, "ls"))

	run(t, s, buf, "cd ../hanako")
	assert.Equal(t, "/usr/hanako\n", run(t, s, buf, "pwd"))

	run(t, s, buf, "cd /bin")
	assert.Equal(t, "/bin\n", run(t, s, buf, "pwd"))
	assert.Equal(t, "vi (10000)\n", run(t, s, buf, "ls vi"))

	run(t, s, buf, "cd ../../..")
	assert.Same(t, s.root, s.Cwd())

	run(t, s, buf, "cd tmp")
	run(t, s, buf, "cd")
	assert.Same(t, s.root, s.Cwd())
}

func TestCdErrors(t *testing.T) {
	s, _ := newTestSession(t)

	assert.ErrorIs(t, s.Execute("cd nowhere"), entry.ErrNotFound)
	assert.ErrorContains(t, s.Execute("cd bin/vi"), "Not a directory")
	assert.Same(t, s.root, s.Cwd())
}

func TestVisitorCommands(t *testing.T) {
	s, buf := newTestSession(t)

	assert.Equal(t, "30000\n", run(t, s, buf, "size bin"))
	assert.Equal(t, "31500\n", run(t, s, buf, "size"))
	assert.Equal(t, "diary.html (100)\nindex.html (300)\n", run(t, s, buf, "find .html"))
	assert.Equal(t, "index.html (300)\n", run(t, s, buf, "find .html usr/hanako"))
	assert.Equal(t, "No matching files\n", run(t, s, buf, "find .pdf"))
	assert.Equal(t, "/bin (30000)\n/bin/vi (10000)\n/bin/mongo (20000)\n", run(t, s, buf, "list bin"))
	assert.Equal(t, "hanako/\n└── index.html (300)\n", run(t, s, buf, "tree usr/hanako"))
	assert.Contains(t, run(t, s, buf, "stats"), "Files: 7\n")

	assert.Error(t, s.Execute("find"))
}

func TestHelpAndExit(t *testing.T) {
	s, buf := newTestSession(t)

	out := run(t, s, buf, "help")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "find <substr> [path]")

	assert.NoError(t, s.Execute("   "))
	assert.ErrorIs(t, s.Execute("rm -rf"), ErrUnknownCommand)

	assert.False(t, s.Done())
	require.NoError(t, s.Execute("exit"))
	assert.True(t, s.Done())
}

func suggestTexts(s *Session, input string) []string {
	buf := prompt.NewBuffer()
	buf.InsertText(input, false, true)
	var out []string
	for _, sg := range s.Completer(*buf.Document()) {
		out = append(out, sg.Text)
	}
	return out
}

func TestCompleter(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, []string{"cd"}, suggestTexts(s, "c"))
	assert.Equal(t, []string{"list", "ls"}, suggestTexts(s, "l"))
	assert.Equal(t, []string{"usr/"}, suggestTexts(s, "cd u"))
	assert.Equal(t, []string{"usr/yuki/"}, suggestTexts(s, "cd usr/y"))
	assert.Equal(t, []string{"bin/vi", "bin/mongo"}, suggestTexts(s, "size bin/"))
	assert.Empty(t, suggestTexts(s, "cd nowhere/"))
}

func TestCdIntoChildNamedLikeRoot(t *testing.T) {
	root := entry.NewDirectory("src")
	inner := entry.NewDirectory("src")
	root.MustAdd(inner, entry.MustNewFile("top.go", 1))
	inner.MustAdd(entry.MustNewFile("a.go", 5))

	var buf bytes.Buffer
	s := NewSession(root, &buf)

	require.NoError(t, s.Execute("cd src"))
	assert.Same(t, inner, s.Cwd())
	assert.Equal(t, "/src\n", run(t, s, &buf, "pwd"))

	run(t, s, &buf, "cd /")
	e, err := s.Resolve("src/a.go")
	require.NoError(t, err)
	assert.Equal(t, "a.go", e.Name())
}
