package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilMap(t *testing.T) {
	cfg := New(nil)
	assert.Equal(t, "default", cfg.String("anything", "default"))
	assert.False(t, cfg.Has("anything"))
}

func TestString(t *testing.T) {
	cfg := New(map[string]any{
		"name":   "dispatch",
		"number": 42,
	})

	assert.Equal(t, "dispatch", cfg.String("name", "x"))
	assert.Equal(t, "x", cfg.String("missing", "x"))
	// Wrong type falls back to the default.
	assert.Equal(t, "x", cfg.String("number", "x"))
}

func TestBool(t *testing.T) {
	cfg := New(map[string]any{
		"strict": true,
		"name":   "not-a-bool",
	})

	assert.True(t, cfg.Bool("strict", false))
	assert.False(t, cfg.Bool("missing", false))
	assert.True(t, cfg.Bool("missing", true))
	assert.False(t, cfg.Bool("name", false))
}

func TestHas(t *testing.T) {
	cfg := New(map[string]any{
		"name":    "plugins",
		"tracing": 42,
	})

	assert.True(t, cfg.Has("name"))
	// Presence is about the key, not the value's type.
	assert.True(t, cfg.Has("tracing"))
	assert.False(t, cfg.Has("missing"))
}

func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte("strict: true\nname: plugins\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Bool("strict", false))
	assert.Equal(t, "plugins", cfg.String("name", ""))
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("strict: [unclosed"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(`{"strict": true, "name": "plugins"}`))
	require.NoError(t, err)
	assert.True(t, cfg.Bool("strict", false))
	assert.Equal(t, "plugins", cfg.String("name", ""))
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "dispatch.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("strict: true\n"), 0o644))

	cfg, err := FromFile(yamlPath)
	require.NoError(t, err)
	assert.True(t, cfg.Bool("strict", false))

	jsonPath := filepath.Join(dir, "dispatch.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"strict": false}`), 0o644))

	cfg, err = FromFile(jsonPath)
	require.NoError(t, err)
	assert.False(t, cfg.Bool("strict", true))
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dispatch.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := FromFile(path)
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
