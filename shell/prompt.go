package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/share"
)

// Completer 补全命令名与当前目录下的路径
func (s *Session) Completer(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	word := d.GetWordBeforeCursor()

	if !strings.Contains(before, " ") {
		suggests := make([]prompt.Suggest, 0, len(commands))
		for name, c := range commands {
			suggests = append(suggests, prompt.Suggest{Text: name, Description: lang.T(c.desc)})
		}
		sort.Slice(suggests, func(i, j int) bool { return suggests[i].Text < suggests[j].Text })
		return prompt.FilterHasPrefix(suggests, word, true)
	}

	dirPart, prefix := "", word
	if i := strings.LastIndex(word, "/"); i >= 0 {
		dirPart, prefix = word[:i+1], word[i+1:]
	}
	dir, err := s.resolveDir(dirPart)
	if err != nil {
		return nil
	}

	var suggests []prompt.Suggest
	for _, c := range dir.Children() {
		if !strings.HasPrefix(c.Name(), prefix) {
			continue
		}
		text := dirPart + c.Name()
		if _, isDir := c.(*entry.Directory); isDir {
			text += "/"
		}
		suggests = append(suggests, prompt.Suggest{Text: text, Description: fmt.Sprint(c.Size())})
	}
	return suggests
}

func (s *Session) livePrefix() (string, bool) {
	return s.relPath(s.cwd) + "> ", true
}

// Run 在终端中运行会话，直到执行 exit
func (s *Session) Run() {
	s.println(lang.T("Type 'help' for available commands"))

	p := prompt.New(
		func(in string) {
			if err := s.Execute(in); err != nil {
				s.println(err)
			}
			if s.done {
				s.println(lang.T("Bye"))
			}
		},
		s.Completer,
		prompt.OptionTitle(share.BUILDNAME),
		prompt.OptionPrefix("> "),
		prompt.OptionLivePrefix(s.livePrefix),
		prompt.OptionPrefixTextColor(prompt.Blue),
		prompt.OptionInputTextColor(prompt.DefaultColor),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && s.done
		}),
	)
	p.Run()
}
