package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sjzsdu/entrytree/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	config.ClearAllConfig()
	t.Cleanup(config.ClearAllConfig)
	return tmpDir
}

func TestGetConfig(t *testing.T) {
	withHome(t)
	t.Setenv("ENTRYTREE_LANG", "zh")
	t.Setenv("ENTRYTREE_FIND_PATTERN", "*.go")
	t.Setenv("PLAIN_KEY", "plain")

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"简短键", "lang", "zh"},
		{"环境变量键", "ENTRYTREE_LANG", "zh"},
		{"带下划线的简短键", "find_pattern", "*.go"},
		{"不存在的配置", "nonexistent", ""},
		{"非前缀环境变量", "PLAIN_KEY", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.GetConfig(tt.key))
		})
	}
}

func TestGetConfigWithDefault(t *testing.T) {
	withHome(t)
	t.Setenv("ENTRYTREE_LANG", "zh")

	assert.Equal(t, "zh", config.GetConfigWithDefault("lang", "en"))
	assert.Equal(t, "fallback", config.GetConfigWithDefault("nonexistent", "fallback"))
}

func TestSetAndClearConfig(t *testing.T) {
	withHome(t)

	config.SetConfig("log_level", "debug")
	assert.Equal(t, "debug", os.Getenv("ENTRYTREE_LOG_LEVEL"))
	assert.Equal(t, "debug", config.GetConfig("log_level"))

	config.SetConfig("ENTRYTREE_LANG", "zh")
	assert.Equal(t, "zh", config.GetConfig("lang"))
	assert.Len(t, config.GetConfigMap(), 2)

	config.ClearConfig("log_level")
	assert.Empty(t, config.GetConfig("log_level"))
	assert.Len(t, config.GetConfigMap(), 1)

	config.ClearAllConfig()
	assert.Empty(t, config.GetConfig("lang"))
	assert.Empty(t, config.GetConfigMap())
}

func TestSaveAndLoadConfig(t *testing.T) {
	home := withHome(t)

	config.SetConfig("lang", "zh")
	config.SetConfig("find_pattern", ".html")
	require.NoError(t, config.SaveConfig())

	content, err := os.ReadFile(filepath.Join(home, ".entrytree", "config"))
	require.NoError(t, err)
	assert.Equal(t, "ENTRYTREE_FIND_PATTERN=.html\nENTRYTREE_LANG=zh\n", string(content))

	config.ClearAllConfig()
	assert.Empty(t, config.GetConfig("lang"))

	require.NoError(t, config.LoadConfig())
	assert.Equal(t, "zh", config.GetConfig("lang"))
	assert.Equal(t, ".html", config.GetConfig("find_pattern"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	withHome(t)
	assert.NoError(t, config.LoadConfig())
	assert.Empty(t, config.GetConfigMap())
}

func TestConfigKeys(t *testing.T) {
	assert.Equal(t, []string{"find_pattern", "lang", "log_level", "pdf_font", "renderer"}, config.GetAllConfigKeys())
	assert.True(t, config.IsValidConfigOption("lang", "zh"))
	assert.False(t, config.IsValidConfigOption("lang", "fr"))
	assert.True(t, config.IsValidConfigOption("find_pattern", "anything"))
	assert.Equal(t, "Set log level", config.GetConfigDescription("log_level"))
	assert.Empty(t, config.GetConfigDescription("missing"))
}

func TestLoadConfigSkipsUnknownAndInvalid(t *testing.T) {
	home := withHome(t)
	t.Setenv("ENTRYTREE_COLOR", "")
	dir := filepath.Join(home, ".entrytree")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "# 注释\n" +
		"\n" +
		"ENTRYTREE_LANG=zh\n" +
		"ENTRYTREE_COLOR=red\n" +
		"ENTRYTREE_LOG_LEVEL=verbose\n" +
		"find_pattern = .go\n" +
		"garbage\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), []byte(content), 0644))

	require.NoError(t, config.LoadConfig())
	assert.Equal(t, map[string]string{
		"ENTRYTREE_LANG":         "zh",
		"ENTRYTREE_FIND_PATTERN": ".go",
	}, config.GetConfigMap())
	assert.Empty(t, os.Getenv("ENTRYTREE_COLOR"))
	assert.Empty(t, config.GetConfig("log_level"))
	assert.Equal(t, ".go", config.GetConfig("find_pattern"))
}

func TestLookupKey(t *testing.T) {
	name, ok := config.LookupKey("ENTRYTREE_PDF_FONT")
	assert.True(t, ok)
	assert.Equal(t, "pdf_font", name)

	name, ok = config.LookupKey("lang")
	assert.True(t, ok)
	assert.Equal(t, "lang", name)

	_, ok = config.LookupKey("ENTRYTREE_COLOR")
	assert.False(t, ok)
}
