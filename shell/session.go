// Package shell 实现在一棵树上浏览与运行访问器的交互式会话
package shell

import (
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/logger"
	"github.com/sjzsdu/entrytree/render"
	"go.uber.org/zap"
)

// ErrUnknownCommand 输入了未注册的命令
var ErrUnknownCommand = errors.New("unknown command")

type command struct {
	usage string
	desc  string
	run   func(s *Session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"ls":    {"ls [path]", "List a directory", (*Session).ls},
		"cd":    {"cd [path]", "Change directory", (*Session).cd},
		"pwd":   {"pwd", "Print current directory", (*Session).pwd},
		"list":  {"list [path]", "List every entry with its path and size", (*Session).list},
		"size":  {"size [path]", "Print the total size of a path", (*Session).size},
		"find":  {"find <substr> [path]", "Find files whose name matches a pattern", (*Session).find},
		"tree":  {"tree [path]", "Draw the tree", (*Session).tree},
		"stats": {"stats [path]", "Show tree statistics", (*Session).stats},
		"help":  {"help", "Show available commands", (*Session).help},
		"exit":  {"exit", "Leave the shell", (*Session).exit},
		"quit":  {"quit", "Leave the shell", (*Session).exit},
	}
}

// Session 持有树根与当前目录
type Session struct {
	root *entry.Directory
	cwd  *entry.Directory
	out  io.Writer
	done bool
}

// NewSession 创建会话，当前目录为 root
func NewSession(root *entry.Directory, out io.Writer) *Session {
	return &Session{root: root, cwd: root, out: out}
}

// Cwd 返回当前目录
func (s *Session) Cwd() *entry.Directory { return s.cwd }

// Done 在执行 exit 后返回 true
func (s *Session) Done() bool { return s.done }

// Execute 执行一行命令。空行被忽略
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := commands[fields[0]]
	if !ok {
		return fmt.Errorf("%s: %w", fields[0], ErrUnknownCommand)
	}
	logger.L().Debug("shell command", zap.String("cmd", fields[0]), zap.Strings("args", fields[1:]))
	return cmd.run(s, fields[1:])
}

// Resolve 解析相对当前目录或以 / 开头的绝对路径
func (s *Session) Resolve(p string) (entry.Entry, error) {
	if p == "" {
		return s.cwd, nil
	}
	if !strings.HasPrefix(p, "/") {
		p = path.Join(s.relPath(s.cwd), p)
	}
	return entry.Lookup(s.root, p)
}

// relPath 返回从会话根开始的路径，会话根为 "/"
func (s *Session) relPath(e entry.Entry) string {
	var names []string
	for cur := e; cur != nil && cur != entry.Entry(s.root); {
		names = append(names, cur.Name())
		parent := cur.Parent()
		if parent == nil {
			break
		}
		cur = parent
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

func (s *Session) arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func (s *Session) resolveDir(p string) (*entry.Directory, error) {
	e, err := s.Resolve(p)
	if err != nil {
		return nil, err
	}
	d, ok := e.(*entry.Directory)
	if !ok {
		return nil, fmt.Errorf("%s: %s", lang.T("Not a directory"), e.Name())
	}
	return d, nil
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) ls(args []string) error {
	e, err := s.Resolve(s.arg(args, 0))
	if err != nil {
		return err
	}
	d, ok := e.(*entry.Directory)
	if !ok {
		s.println(e.String())
		return nil
	}
	for _, c := range d.Children() {
		if _, isDir := c.(*entry.Directory); isDir {
			s.println(c.Name() + "/")
		} else {
			s.println(c.String())
		}
	}
	return nil
}

func (s *Session) cd(args []string) error {
	if len(args) == 0 {
		s.cwd = s.root
		return nil
	}
	d, err := s.resolveDir(args[0])
	if err != nil {
		return err
	}
	s.cwd = d
	return nil
}

func (s *Session) pwd([]string) error {
	s.println(s.relPath(s.cwd))
	return nil
}

func (s *Session) list(args []string) error {
	e, err := s.Resolve(s.arg(args, 0))
	if err != nil {
		return err
	}
	return e.Accept(entry.NewListVisitor(entry.NewWriterSink(s.out)))
}

func (s *Session) size(args []string) error {
	e, err := s.Resolve(s.arg(args, 0))
	if err != nil {
		return err
	}
	sv := entry.NewSizeVisitor()
	if err := e.Accept(sv); err != nil {
		return err
	}
	s.println(sv.Size())
	return nil
}

func (s *Session) find(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", commands["find"].usage)
	}
	e, err := s.Resolve(s.arg(args, 1))
	if err != nil {
		return err
	}
	ffv := entry.NewFileFindVisitor(entry.NameContains(args[0]))
	if err := e.Accept(ffv); err != nil {
		return err
	}
	found := ffv.FoundFiles()
	if len(found) == 0 {
		s.println(lang.T("No matching files"))
		return nil
	}
	for _, f := range found {
		s.println(f)
	}
	return nil
}

func (s *Session) tree(args []string) error {
	e, err := s.Resolve(s.arg(args, 0))
	if err != nil {
		return err
	}
	return e.Accept(entry.NewTreeVisitor(entry.NewWriterSink(s.out), entry.DefaultTreeOptions()))
}

func (s *Session) stats(args []string) error {
	e, err := s.Resolve(s.arg(args, 0))
	if err != nil {
		return err
	}
	for _, line := range render.StatsLines(entry.Stats(e)) {
		s.println(line)
	}
	return nil
}

func (s *Session) help([]string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	s.println(lang.T("Commands") + ":")
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(s.out, "  %-22s %s\n", c.usage, lang.T(c.desc))
	}
	return nil
}

func (s *Session) exit([]string) error {
	s.done = true
	return nil
}
