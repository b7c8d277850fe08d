package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(0, cfg.Capacity)
	assert.Equal("", cfg.Initial)
	assert.Equal(DEFAULT_CLEAR_CLIPBOARD_DELAY, cfg.GetClearClipboardDelay())
	assert.Equal("", cfg.DebugLog)
}

func TestLoadUserConfig(t *testing.T) {
	assert := assert.New(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "easyundo")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	writeConfig(t, dir, "capacity = 5\ninitial = \"hello\"\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(5, cfg.Capacity)
	assert.Equal("hello", cfg.Initial)
}

func TestLoadExtraOverrides(t *testing.T) {
	assert := assert.New(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "easyundo")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	writeConfig(t, dir, "capacity = 5\ninitial = \"hello\"\n")

	extra := writeConfig(t, t.TempDir(), "capacity = 2\nclear_clipboard_delay = 0\ndebug_log = \"~/undo.log\"\n")

	cfg, err := Load(extra)
	require.NoError(t, err)
	assert.Equal(2, cfg.Capacity)
	assert.Equal("hello", cfg.Initial)
	assert.Equal(0, cfg.GetClearClipboardDelay())
	assert.Equal(filepath.Join(home, "undo.log"), cfg.DebugLog)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name    string
		content string
	}{
		{name: "negative capacity", content: "capacity = -1\n"},
		{name: "negative clipboard delay", content: "clear_clipboard_delay = -5\n"},
		{name: "invalid toml", content: "capacity = = 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input    string
		expected string
	}{
		{"~/log", filepath.Join(home, "log")},
		{"~", home},
		{"/tmp/log", "/tmp/log"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, expandPath(tt.input), tt.input)
	}
}
