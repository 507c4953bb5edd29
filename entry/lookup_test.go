package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	root, bin := demoTree(t)

	tests := []struct {
		path string
		want string
	}{
		{"", "/root"},
		{"/", "/root"},
		{"/root", "/root"},
		{"bin", "/root/bin"},
		{"/root/usr/yuki", "/root/usr/yuki"},
		{"usr/hanako/index.html", "/root/usr/hanako/index.html"},
		{"./usr//tomura/", "/root/usr/tomura"},
		{"usr\\yuki", "/root/usr/yuki"},
		{"usr/yuki/..", "/root/usr"},
		{"../../bin", "/root/bin"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e, err := Lookup(root, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Path())
		})
	}

	e, err := Lookup(root, "bin")
	require.NoError(t, err)
	assert.Same(t, bin, e)
}

func TestLookupErrors(t *testing.T) {
	root, _ := demoTree(t)

	_, err := Lookup(root, "usr/nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Lookup(root, "bin/vi/deeper")
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestLookupFirstMatchWins(t *testing.T) {
	d := NewDirectory("d")
	first := MustNewFile("same", 1)
	d.MustAdd(first, MustNewFile("same", 2))

	e, err := Lookup(d, "same")
	require.NoError(t, err)
	assert.Same(t, first, e)
}

func TestLookupChildNamedLikeRoot(t *testing.T) {
	root := NewDirectory("src")
	inner := NewDirectory("src")
	root.MustAdd(inner, MustNewFile("top.go", 1))
	inner.MustAdd(MustNewFile("a.go", 5))

	tests := []struct {
		path string
		want Entry
	}{
		{"/", root},
		{"src", inner},
		{"/src", inner},
		{"/src/a.go", inner.Children()[0]},
		{"/top.go", root.Children()[1]},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e, err := Lookup(root, tt.path)
			require.NoError(t, err)
			assert.Same(t, tt.want, e)
		})
	}

	e, err := Lookup(root, "/src")
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Size())
}
