package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sjzsdu/entrytree/logger"
	"github.com/sjzsdu/entrytree/share"
	"go.uber.org/zap"
)

var configMap map[string]string

func init() {
	configMap = make(map[string]string)
	if err := LoadConfig(); err == nil {
		for key, value := range configMap {
			os.Setenv(key, value)
		}
	}
}

// GetPath 返回 ~/.entrytree 下的路径，name 为空时返回目录本身
func GetPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, share.PATH, name)
}

func GetConfig(key string) string {
	// 1. 尝试按原样获取，可能是完整的环境变量名
	value := os.Getenv(key)
	if value != "" {
		return value
	}

	// 2. 如果key不是以PREFIX开头，尝试转换后获取
	if !strings.HasPrefix(key, share.PREFIX) {
		return os.Getenv(GetEnvKey(key))
	}

	return ""
}

func GetConfigWithDefault(key string, defaultValue string) string {
	value := GetConfig(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadConfig 读取 ~/.entrytree/config。空行和 # 注释被忽略，未登记的键与不在可选值内的值跳过并记录警告
func LoadConfig() error {
	file, err := os.Open(GetPath("config"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	// 清空现有配置
	configMap = make(map[string]string)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			logger.L().Warn("skip malformed config line", zap.Int("line", lineNo))
			continue
		}
		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		name, ok := LookupKey(key)
		if !ok {
			logger.L().Warn("skip unknown config key", zap.String("key", key), zap.Int("line", lineNo))
			continue
		}
		if !IsValidConfigOption(name, value) {
			logger.L().Warn("skip invalid config value",
				zap.String("key", key), zap.String("value", value), zap.Strings("options", GetConfigOptions(name)))
			continue
		}
		key = GetEnvKey(name)
		configMap[key] = value
		os.Setenv(key, value)
	}
	return scanner.Err()
}

func SaveConfig() error {
	configDir := GetPath("")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(configDir, "config"))
	if err != nil {
		return err
	}
	defer file.Close()

	keys := make([]string, 0, len(configMap))
	for key := range configMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := fmt.Fprintf(file, "%s=%s\n", key, configMap[key]); err != nil {
			return err
		}
	}
	return file.Sync()
}

func GetEnvKey(flagKey string) string {
	return share.PREFIX + strings.ToUpper(flagKey)
}

// SetConfig 设置配置值并更新环境变量
func SetConfig(key, value string) {
	if !strings.HasPrefix(key, share.PREFIX) {
		key = GetEnvKey(key)
	}
	configMap[key] = value
	os.Setenv(key, value)
}

// ClearConfig 清除指定配置
func ClearConfig(key string) {
	if !strings.HasPrefix(key, share.PREFIX) {
		key = GetEnvKey(key)
	}
	delete(configMap, key)
	os.Unsetenv(key)
}

// ClearAllConfig 清除所有配置
func ClearAllConfig() {
	for key := range configMap {
		os.Unsetenv(key)
	}
	configMap = make(map[string]string)
}

// GetConfigMap 返回已加载配置的副本
func GetConfigMap() map[string]string {
	out := make(map[string]string, len(configMap))
	for k, v := range configMap {
		out[k] = v
	}
	return out
}
