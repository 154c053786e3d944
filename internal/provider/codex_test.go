package provider_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/aictx/internal/provider"
	"github.com/hbjs97/aictx/internal/store"
)

// codexConfig는 테스트에서 config.toml을 읽을 때 쓰는 최소 스키마다.
type codexConfig struct {
	Model          string `toml:"model"`
	ModelProvider  string `toml:"model_provider"`
	ModelProviders map[string]struct {
		Name    string `toml:"name"`
		BaseURL string `toml:"base_url"`
		WireAPI string `toml:"wire_api"`
	} `toml:"model_providers"`
}

func readCodexFiles(t *testing.T, home string) (map[string]string, codexConfig) {
	t.Helper()

	authPath, configPath := provider.CodexPaths(home)

	authData, err := os.ReadFile(authPath)
	require.NoError(t, err)
	var auth map[string]string
	require.NoError(t, json.Unmarshal(authData, &auth))

	configData, err := os.ReadFile(configPath)
	require.NoError(t, err)
	var cfg codexConfig
	require.NoError(t, toml.Unmarshal(configData, &cfg))

	return auth, cfg
}

func TestCodexApplier_Apply_DefaultBaseURL(t *testing.T) {
	home := t.TempDir()
	ap := provider.NewCodex(home)

	p := &store.Profile{Type: store.TypeCodex, APIKey: "sk-codex-1", BaseURL: ""}
	require.NoError(t, ap.Apply(p))

	auth, cfg := readCodexFiles(t, home)
	assert.Equal(t, "sk-codex-1", auth["OPENAI_API_KEY"])

	route, ok := cfg.ModelProviders["aictx"]
	require.True(t, ok)
	assert.Equal(t, provider.DefaultCodexBaseURL, route.BaseURL)
	assert.Equal(t, "aictx", cfg.ModelProvider)
	assert.NotEmpty(t, cfg.Model)
}

func TestCodexApplier_Apply_OverrideBaseURL(t *testing.T) {
	home := t.TempDir()
	ap := provider.NewCodex(home)

	p := &store.Profile{Type: store.TypeCodex, APIKey: "sk-codex-2", BaseURL: "https://relay.example.com/v1"}
	require.NoError(t, ap.Apply(p))

	_, cfg := readCodexFiles(t, home)
	assert.Equal(t, "https://relay.example.com/v1", cfg.ModelProviders["aictx"].BaseURL)
}

func TestCodexApplier_Apply_OverwritesPreviousProfile(t *testing.T) {
	home := t.TempDir()
	ap := provider.NewCodex(home)

	first := &store.Profile{Type: store.TypeCodex, APIKey: "sk-first", BaseURL: ""}
	require.NoError(t, ap.Apply(first))

	second := &store.Profile{Type: store.TypeCodex, APIKey: "sk-second", BaseURL: "https://second.example.com"}
	require.NoError(t, ap.Apply(second))

	auth, cfg := readCodexFiles(t, home)
	assert.Equal(t, "sk-second", auth["OPENAI_API_KEY"])
	assert.Equal(t, "https://second.example.com", cfg.ModelProviders["aictx"].BaseURL)
}

func TestCodexApplier_Clear(t *testing.T) {
	home := t.TempDir()
	ap := provider.NewCodex(home)

	require.NoError(t, ap.Apply(&store.Profile{Type: store.TypeCodex, APIKey: "sk-1"}))
	require.NoError(t, ap.Clear())

	authPath, configPath := provider.CodexPaths(home)
	_, err := os.Stat(authPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(configPath)
	assert.True(t, os.IsNotExist(err))
}

func TestCodexApplier_Clear_MissingFilesNotFatal(t *testing.T) {
	ap := provider.NewCodex(t.TempDir())
	assert.NoError(t, ap.Clear())
}

func TestCodexApplier_AuthFilePermissions(t *testing.T) {
	home := t.TempDir()
	ap := provider.NewCodex(home)

	require.NoError(t, ap.Apply(&store.Profile{Type: store.TypeCodex, APIKey: "sk-1"}))

	authPath, _ := provider.CodexPaths(home)
	info, err := os.Stat(authPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
