package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Request: mcp.Request{Method: string(mcp.MethodToolsCall)},
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func textFromResult(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, r)
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return fmt.Sprintf("%v", r.Result)
}

func call(t *testing.T, s *EntryMCPServer, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	h, ok := s.Handler(name)
	require.True(t, ok, "handler %s not registered", name)
	res, err := h(context.Background(), newRequest(name, args))
	require.NoError(t, err)
	return res
}

func TestToolNames(t *testing.T) {
	s := NewEntryMCPServer(source.DemoTree())
	names := s.ToolNames()
	sort.Strings(names)
	assert.Equal(t, []string{"entry_find", "entry_list", "entry_size", "entry_stats", "entry_tree"}, names)
}

func TestEntryList(t *testing.T) {
	s := NewEntryMCPServer(source.DemoTree())

	res := call(t, s, "entry_list", map[string]interface{}{"path": "/bin"})
	assert.False(t, res.IsError)
	assert.Equal(t, "/bin (30000)\n/bin/vi (10000)\n/bin/mongo (20000)", textFromResult(t, res))

	res = call(t, s, "entry_list", map[string]interface{}{"path": "/nope"})
	assert.True(t, res.IsError)
	assert.Contains(t, textFromResult(t, res), "entry not found")
}

func TestEntrySize(t *testing.T) {
	s := NewEntryMCPServer(source.DemoTree())

	var got struct {
		Path string `json:"path"`
		Size int64  `json:"size"`
	}
	res := call(t, s, "entry_size", map[string]interface{}{"path": "bin"})
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &got))
	assert.Equal(t, "/root/bin", got.Path)
	assert.Equal(t, int64(30000), got.Size)

	res = call(t, s, "entry_size", map[string]interface{}{})
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &got))
	assert.Equal(t, int64(31500), got.Size)
}

func TestEntryFind(t *testing.T) {
	s := NewEntryMCPServer(source.DemoTree())

	tests := []struct {
		name string
		args map[string]interface{}
		want []string
	}{
		{"contains", map[string]interface{}{"pattern": ".html"}, []string{"diary.html (100)", "index.html (300)"}},
		{"suffix", map[string]interface{}{"pattern": ".txt", "mode": "suffix"}, []string{"game.txt (400)"}},
		{"glob", map[string]interface{}{"pattern": "*o*", "mode": "glob", "path": "/bin"}, []string{"mongo (20000)"}},
		{"regexp", map[string]interface{}{"pattern": "^(vi|junk)", "mode": "regexp"}, []string{"vi (10000)", "junk.mail (500)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(t, s, "entry_find", tt.args)
			require.False(t, res.IsError, textFromResult(t, res))
			var got struct {
				Files []string `json:"files"`
			}
			require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &got))
			assert.Equal(t, tt.want, got.Files)
		})
	}

	assert.True(t, call(t, s, "entry_find", map[string]interface{}{}).IsError)
	assert.True(t, call(t, s, "entry_find", map[string]interface{}{"pattern": "[", "mode": "glob"}).IsError)
	assert.True(t, call(t, s, "entry_find", map[string]interface{}{"pattern": "(", "mode": "regexp"}).IsError)
	assert.True(t, call(t, s, "entry_find", map[string]interface{}{"pattern": "x", "mode": "fuzzy"}).IsError)
}

func TestEntryTreeAndStats(t *testing.T) {
	s := NewEntryMCPServer(source.DemoTree())

	res := call(t, s, "entry_tree", map[string]interface{}{"path": "/usr", "showFiles": false})
	assert.Equal(t, "usr/\n├── yuki/\n├── hanako/\n└── tomura/", textFromResult(t, res))

	res = call(t, s, "entry_tree", map[string]interface{}{"maxDepth": 1})
	assert.Equal(t, "root/", textFromResult(t, res))

	res = call(t, s, "entry_stats", map[string]interface{}{"path": "/"})
	var st map[string]int64
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &st))
	assert.Equal(t, int64(7), st["fileCount"])
	assert.Equal(t, int64(31500), st["totalSize"])
	assert.Equal(t, int64(3), st["maxDepth"])
}

func TestEntrySizeChildNamedLikeRoot(t *testing.T) {
	root := entry.NewDirectory("src")
	inner := entry.NewDirectory("src")
	root.MustAdd(inner, entry.MustNewFile("top.go", 1))
	inner.MustAdd(entry.MustNewFile("a.go", 5))
	s := NewEntryMCPServer(root)

	var got struct {
		Path string `json:"path"`
		Size int64  `json:"size"`
	}
	res := call(t, s, "entry_size", map[string]interface{}{"path": "/src"})
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &got))
	assert.Equal(t, "/src/src", got.Path)
	assert.Equal(t, int64(5), got.Size)

	res = call(t, s, "entry_size", map[string]interface{}{"path": "/"})
	require.NoError(t, json.Unmarshal([]byte(textFromResult(t, res)), &got))
	assert.Equal(t, int64(6), got.Size)
}
