package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/chatconfig"
)

func testEnv(t *testing.T) Env {
	t.Helper()
	return Env{Home: t.TempDir()}
}

func writeConfig(t *testing.T, e Env, raw string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.Dir(), 0o755))
	require.NoError(t, os.WriteFile(e.ConfigPath(), []byte(raw), 0o600))
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	e := testEnv(t)

	cfg, err := LoadConfig(e, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)
	assert.Equal(t, chatconfig.Default(), cfg.ChatConfig())
	assert.False(t, cfg.IsValid())
	assert.FileExists(t, e.ConfigPath())
}

func TestLoadConfig_MigratesLegacyModel(t *testing.T) {
	e := testEnv(t)
	writeConfig(t, e, `{
  "profiles": {
    "work": {"api_key": "sk-test", "model": "gpt-4"}
  },
  "active_profile": "work"
}`)

	cfg, err := LoadConfig(e, nil)
	require.NoError(t, err)

	assert.True(t, cfg.IsValid())
	assert.Equal(t, "gpt-4", cfg.GetModel())
	assert.Equal(t, "gpt-4", cfg.ChatConfig().Model)
	assert.Equal(t, chatconfig.Default().MaxPromptTokens, cfg.ChatConfig().MaxPromptTokens)
	assert.Empty(t, cfg.Current().Model)
}

func TestLoadConfig_FallsBackToFirstProfile(t *testing.T) {
	e := testEnv(t)
	writeConfig(t, e, `{
  "profiles": {
    "zeta": {"api_key": "k"},
    "alpha": {"api_key": "k"}
  },
  "active_profile": "gone"
}`)

	cfg, err := LoadConfig(e, nil)
	require.NoError(t, err)
	assert.Equal(t, "alpha", cfg.ActiveProfile)
}

func TestLoadConfig_ClampsTokenLimitsToModel(t *testing.T) {
	e := testEnv(t)
	writeConfig(t, e, `{
  "profiles": {
    "known": {"chat": {"model": "gpt-4", "maxPromptTokens": 200000, "maxGenerationTokens": 60000, "temperature": 1, "top_p": 1}},
    "unknown": {"chat": {"model": "local-llm", "maxPromptTokens": 300000, "maxGenerationTokens": 70000, "temperature": 1, "top_p": 1}},
    "fits": {"chat": {"model": "gpt-4", "maxPromptTokens": 1000, "maxGenerationTokens": 500, "temperature": 1, "top_p": 1}}
  },
  "active_profile": "known"
}`)

	cfg, err := LoadConfig(e, catalog.Default())
	require.NoError(t, err)

	known := cfg.Profiles["known"].Chat
	assert.Equal(t, 8192, known.MaxPromptTokens)
	assert.Equal(t, 4096, known.MaxGenerationTokens)

	unknown := cfg.Profiles["unknown"].Chat
	assert.Equal(t, chatconfig.AbsoluteMaxPromptTokens, unknown.MaxPromptTokens)
	assert.Equal(t, chatconfig.AbsoluteMaxGenerationTokens, unknown.MaxGenerationTokens)

	fits := cfg.Profiles["fits"].Chat
	assert.Equal(t, 1000, fits.MaxPromptTokens)
	assert.Equal(t, 500, fits.MaxGenerationTokens)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bad json", raw: `{`},
		{name: "no profiles", raw: `{"profiles": {}, "active_profile": "x"}`},
		{name: "invalid settings", raw: `{"profiles": {"p": {"chat": {"model": "gpt-4", "temperature": 9}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEnv(t)
			writeConfig(t, e, tt.raw)

			_, err := LoadConfig(e, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_NoProfilesSentinel(t *testing.T) {
	e := testEnv(t)
	writeConfig(t, e, `{"profiles": {}}`)

	_, err := LoadConfig(e, nil)
	assert.ErrorIs(t, err, ErrNoProfiles)
}

func TestSetChatConfig_SaveRoundTrip(t *testing.T) {
	e := testEnv(t)
	cfg, err := LoadConfig(e, nil)
	require.NoError(t, err)

	chat := chatconfig.Default()
	chat.Model = "gpt-4o"
	chat.Temperature = 0.3
	chat.MaxPromptTokens = 1234
	require.NoError(t, cfg.SetChatConfig(chat))
	require.NoError(t, cfg.Save())

	reloaded, err := LoadConfig(e, nil)
	require.NoError(t, err)
	assert.Equal(t, chat, reloaded.ChatConfig())

	data, err := os.ReadFile(e.ConfigPath())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	profile := raw["profiles"].(map[string]any)[DefaultProfile].(map[string]any)
	assert.NotContains(t, profile, "model")
	assert.Contains(t, profile["chat"], "maxPromptTokens")
	assert.Contains(t, profile["chat"], "top_p")
}

func TestSetChatConfig_RejectsInvalid(t *testing.T) {
	cfg, err := LoadConfig(testEnv(t), nil)
	require.NoError(t, err)

	chat := chatconfig.Default()
	chat.TopP = 3
	assert.Error(t, cfg.SetChatConfig(chat))
	assert.Equal(t, chatconfig.Default(), cfg.ChatConfig())
}

func TestProfileLifecycle(t *testing.T) {
	cfg, err := LoadConfig(testEnv(t), nil)
	require.NoError(t, err)

	require.NoError(t, cfg.AddProfile("work", Profile{APIKey: "k"}))
	assert.ErrorIs(t, cfg.AddProfile("work", Profile{}), ErrProfileExists)
	assert.Equal(t, chatconfig.Default(), cfg.Profiles["work"].Chat)

	assert.ErrorIs(t, cfg.UseProfile("nope"), ErrProfileNotFound)
	require.NoError(t, cfg.UseProfile("work"))
	assert.Equal(t, "work", cfg.ActiveProfile)

	require.NoError(t, cfg.DeleteProfile("work"))
	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)

	require.NoError(t, cfg.DeleteProfile(DefaultProfile))
	assert.Equal(t, []string{DefaultProfile}, cfg.ProfileNames())
	assert.Equal(t, DefaultProfile, cfg.ActiveProfile)

	assert.ErrorIs(t, cfg.DeleteProfile("nope"), ErrProfileNotFound)
}

func TestSave_WithoutPath(t *testing.T) {
	cfg := &Config{Profiles: map[string]Profile{"a": NewDefaultProfile()}}
	assert.Error(t, cfg.Save())
}

func TestLoadEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICODE_HOME", home)
	t.Setenv("RORICODE_LOG_LEVEL", "debug")
	t.Setenv("RORICODE_ANTHROPIC_ENABLE", "Y")
	t.Setenv("RORICODE_LOCALE", "")
	t.Setenv("LANG", "zh_CN.UTF-8")

	e, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, home, e.Home)
	assert.Equal(t, "debug", e.LogLevel)
	assert.True(t, e.AnthropicEnabled())
	assert.Equal(t, "zh_CN.UTF-8", e.PreferredLocale())
	assert.Equal(t, filepath.Join(home, ".roricode", "config.json"), e.ConfigPath())
	assert.Equal(t, filepath.Join(home, ".roricode", "models.yaml"), e.CatalogPath())
	assert.Equal(t, filepath.Join(home, ".roricode", "roricode.log"), e.LogPath())
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("RORICODE_HOME", t.TempDir())
	t.Setenv("RORICODE_LOG_LEVEL", "")
	t.Setenv("RORICODE_ANTHROPIC_ENABLE", "")
	t.Setenv("RORICODE_LOCALE", "ja")

	e, err := LoadEnv()
	require.NoError(t, err)

	assert.False(t, e.AnthropicEnabled())
	assert.Equal(t, "ja", e.PreferredLocale())
}

func TestEnv_AnthropicFlag(t *testing.T) {
	for value, want := range map[string]bool{"Y": true, "y": true, " Y ": true, "N": false, "yes": false, "": false} {
		assert.Equal(t, want, Env{AnthropicEnable: value}.AnthropicEnabled(), value)
	}
}
