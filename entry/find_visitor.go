package entry

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// NameMatcher 判断文件名是否命中
type NameMatcher func(name string) bool

// NameContains 名称包含子串即命中
func NameContains(substr string) NameMatcher {
	return func(name string) bool { return strings.Contains(name, substr) }
}

// NameSuffix 名称以 suffix 结尾即命中
func NameSuffix(suffix string) NameMatcher {
	return func(name string) bool { return strings.HasSuffix(name, suffix) }
}

// NameRegexp 名称匹配正则即命中
func NameRegexp(re *regexp.Regexp) NameMatcher {
	return re.MatchString
}

// NewGlobMatcher 使用 path.Match 语法，模式非法时返回错误
func NewGlobMatcher(pattern string) (NameMatcher, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	return func(name string) bool {
		ok, _ := path.Match(pattern, name)
		return ok
	}, nil
}

// FileFindVisitor 收集名称命中的文件，目录只递归不收集
type FileFindVisitor struct {
	match NameMatcher
	found []*File
}

func NewFileFindVisitor(match NameMatcher) *FileFindVisitor {
	return &FileFindVisitor{match: match}
}

func (fv *FileFindVisitor) VisitFile(f *File) error {
	if fv.match(f.Name()) {
		fv.found = append(fv.found, f)
	}
	return nil
}

func (fv *FileFindVisitor) VisitDirectory(d *Directory) error {
	return VisitChildren(d, fv)
}

// FoundFiles 按发现顺序返回 "<名称> (<大小>)"
func (fv *FileFindVisitor) FoundFiles() []string {
	out := make([]string, 0, len(fv.found))
	for _, f := range fv.found {
		out = append(out, f.String())
	}
	return out
}

// Found 返回命中的文件节点
func (fv *FileFindVisitor) Found() []*File {
	out := make([]*File, len(fv.found))
	copy(out, fv.found)
	return out
}
