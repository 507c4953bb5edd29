package config

import (
	"sort"
	"strings"

	"github.com/sjzsdu/entrytree/share"
)

// ConfigKeyInfo 存储配置键的相关信息
type ConfigKeyInfo struct {
	Description string   // 配置项描述
	Options     []string // 可选值，如果为空则表示没有限制
}

// 配置键常量定义
const (
	KeyLang        = "lang"
	KeyFindPattern = "find_pattern"
	KeyLogLevel    = "log_level"
	KeyRenderer    = "renderer"
	KeyPDFFont     = "pdf_font"
)

// ConfigKeys 存储所有配置键及其信息
var ConfigKeys = map[string]ConfigKeyInfo{
	KeyLang: {
		Description: "Set language",
		Options:     []string{"en", "zh", "zh-CN"},
	},
	KeyFindPattern: {
		Description: "Set default find pattern",
	},
	KeyLogLevel: {
		Description: "Set log level",
		Options:     []string{"debug", "info", "warn", "error"},
	},
	KeyRenderer: {
		Description: "Set output renderer",
		Options:     []string{"text", "markdown"},
	},
	KeyPDFFont: {
		Description: "Set TTF font file for PDF export",
	},
}

// GetConfigDescription 获取配置键的描述
func GetConfigDescription(key string) string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Description
	}
	return ""
}

// GetConfigOptions 获取配置键的可选值
func GetConfigOptions(key string) []string {
	if info, exists := ConfigKeys[key]; exists {
		return info.Options
	}
	return nil
}

// IsValidConfigOption 检查给定的值是否是配置键的有效选项
func IsValidConfigOption(key, value string) bool {
	options := GetConfigOptions(key)
	if len(options) == 0 {
		return true
	}
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// LookupKey 把 "lang" 或 "ENTRYTREE_LANG" 形式的键还原为配置键名
func LookupKey(key string) (string, bool) {
	name := strings.ToLower(strings.TrimPrefix(key, share.PREFIX))
	_, ok := ConfigKeys[name]
	return name, ok
}

// GetAllConfigKeys 按字母顺序返回所有配置键
func GetAllConfigKeys() []string {
	keys := make([]string, 0, len(ConfigKeys))
	for key := range ConfigKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
