package typedispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/typedispatch/pkg/typedispatch/config"
)

func TestOptionsFromConfigDefaults(t *testing.T) {
	opts := OptionsFromConfig(config.New(nil))
	assert.Empty(t, opts)
}

func TestNewStoreFromConfig(t *testing.T) {
	cfg := config.New(map[string]any{
		"strict":         true,
		"process_output": true,
	})

	s := NewStoreFromConfig(cfg)
	assert.True(t, s.strict)
	assert.True(t, s.processOutput)

	err := s.Process(context.Background(), 3.14)
	assert.ErrorIs(t, err, ErrNoProcessor)
}

func TestNewStoreFromConfigIgnoresUnknownKeys(t *testing.T) {
	cfg := config.New(map[string]any{
		"strict":  false,
		"unknown": "ignored",
	})

	s := NewStoreFromConfig(cfg)
	assert.False(t, s.strict)
}

func TestNewStoreFromConfigExtraOptionsWin(t *testing.T) {
	cfg := config.New(map[string]any{"strict": true})

	s := NewStoreFromConfig(cfg, WithStrict(false))
	assert.False(t, s.strict)
}

func TestCreateStoreFromConfigNamed(t *testing.T) {
	cfg := config.New(map[string]any{
		"name":   "cfg-plugins",
		"strict": true,
	})

	s, err := CreateStoreFromConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = DestroyStore("cfg-plugins") })

	assert.Equal(t, "cfg-plugins", s.Name())
	assert.True(t, s.strict)

	got, err := GetStore("cfg-plugins")
	require.NoError(t, err)
	assert.Same(t, s, got)

	// The name is registered process-wide, so a second build collides.
	_, err = CreateStoreFromConfig(cfg)
	assert.ErrorIs(t, err, ErrStoreExists)
}

func TestCreateStoreFromConfigAnonymous(t *testing.T) {
	s, err := CreateStoreFromConfig(config.New(map[string]any{"strict": true}))
	require.NoError(t, err)
	assert.Equal(t, "", s.Name())
	assert.True(t, s.strict)
}

func TestCreateStoreFromConfigReservedName(t *testing.T) {
	_, err := CreateStoreFromConfig(config.New(map[string]any{"name": GlobalStoreName}))
	assert.ErrorIs(t, err, ErrReservedStore)
}

func TestOptionsFromConfigYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte("strict: true\nprocess_output: false\n"))
	require.NoError(t, err)

	s := NewStoreFromConfig(cfg)
	assert.True(t, s.strict)
	assert.False(t, s.processOutput)
}
