// Package lang 提供界面文本的本地化。消息 ID 即英文原文，找不到译文时原样返回。
package lang

import (
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/entrytree/config"
	"github.com/sjzsdu/entrytree/share"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mu        sync.RWMutex
	once      sync.Once
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
)

func setup() {
	once.Do(func() {
		bundle = i18n.NewBundle(language.English)
		for t, msgs := range catalogs {
			bundle.MustAddMessages(t, msgs...)
		}
		use(config.GetConfigWithDefault("lang", share.DEFAULT_LANG))
	})
}

func use(lang string) {
	t, err := language.Parse(lang)
	if err != nil {
		t = language.English
	}
	tag = t
	localizer = i18n.NewLocalizer(bundle, t.String(), language.English.String())
}

// SetLanguage 切换当前语言，无法识别的语言回退到英文
func SetLanguage(lang string) {
	setup()
	mu.Lock()
	defer mu.Unlock()
	use(lang)
}

// Current 返回当前语言
func Current() language.Tag {
	setup()
	mu.RLock()
	defer mu.RUnlock()
	return tag
}

// T 翻译消息
func T(id string) string {
	setup()
	mu.RLock()
	l := localizer
	mu.RUnlock()

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: id},
	})
	if err != nil {
		return id
	}
	return s
}

// Printer 返回当前语言的格式化打印器，数字按地区习惯分组
func Printer() *message.Printer {
	return message.NewPrinter(Current())
}

// FormatSize 把字节数格式化为带单位的可读字符串
func FormatSize(size int64) string {
	p := Printer()
	switch {
	case size < 1024:
		return p.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return p.Sprintf("%.1f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return p.Sprintf("%.1f MB", float64(size)/(1024*1024))
	default:
		return p.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
	}
}

// Errorf 以翻译后的消息为前缀包装错误
func Errorf(id string, err error) error {
	return fmt.Errorf("%s: %w", T(id), err)
}
