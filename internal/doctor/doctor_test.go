package doctor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbjs97/aictx/internal/doctor"
	"github.com/hbjs97/aictx/internal/provider"
	"github.com/hbjs97/aictx/internal/store"
	"github.com/hbjs97/aictx/internal/testutil"
)

func TestCheckBinaries(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("claude --version", "1.0.42 (Claude Code)", nil)
	fc.Register("codex --version", "codex-cli 0.45.0", nil)
	fc.Register("gemini --version", "0.11.0", nil)
	fc.Register("opencode --version", "", assert.AnError)

	results := doctor.CheckBinaries(context.Background(), fc)
	require.Len(t, results, 4)

	byName := map[string]doctor.DiagResult{}
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.Equal(t, doctor.StatusOK, byName["claude"].Status)
	assert.Equal(t, "1.0.42 (Claude Code)", byName["claude"].Message)
	assert.Equal(t, doctor.StatusWarn, byName["opencode"].Status)
	assert.NotEmpty(t, byName["opencode"].Fix)
}

func TestCheckStore_Missing(t *testing.T) {
	r := doctor.CheckStore(filepath.Join(t.TempDir(), "configs.json"))
	assert.Equal(t, doctor.StatusOK, r.Status)
}

func TestCheckStore_Corrupt(t *testing.T) {
	path := testutil.TempStoreFile(t, "{broken")
	r := doctor.CheckStore(path)
	assert.Equal(t, doctor.StatusFail, r.Status)
}

func TestCheckStore_DoubleActiveWarns(t *testing.T) {
	path := testutil.TempStoreFile(t, `{
  "configs": [
    {"id": "a", "name": "a", "config_type": "claude", "api_key": "k", "base_url": "", "is_active": true},
    {"id": "b", "name": "b", "config_type": "claude", "api_key": "k", "base_url": "", "is_active": true}
  ]
}`)
	r := doctor.CheckStore(path)
	assert.Equal(t, doctor.StatusWarn, r.Status)
}

func TestCheckStore_Healthy(t *testing.T) {
	path := testutil.TempStoreFile(t, testutil.SeedStoreJSON())
	r := doctor.CheckStore(path)
	assert.Equal(t, doctor.StatusOK, r.Status)
	assert.Contains(t, r.Message, "4")
}

func TestCheckCodexFiles_NoneIsOK(t *testing.T) {
	r := doctor.CheckCodexFiles(t.TempDir())
	assert.Equal(t, doctor.StatusOK, r.Status)
}

func TestCheckCodexFiles_HalfPairWarns(t *testing.T) {
	home := t.TempDir()
	authPath, _ := provider.CodexPaths(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(authPath), 0700))
	require.NoError(t, os.WriteFile(authPath, []byte(`{"OPENAI_API_KEY": "sk-1"}`), 0600))

	r := doctor.CheckCodexFiles(home)
	assert.Equal(t, doctor.StatusWarn, r.Status)
}

func TestCheckCodexFiles_AppliedPairIsOK(t *testing.T) {
	home := t.TempDir()
	ap := provider.NewCodex(home)
	require.NoError(t, ap.Apply(&store.Profile{Type: store.TypeCodex, APIKey: "sk-1"}))

	r := doctor.CheckCodexFiles(home)
	assert.Equal(t, doctor.StatusOK, r.Status)
}

func TestCheckCodexFiles_BrokenTOMLFails(t *testing.T) {
	home := t.TempDir()
	authPath, configPath := provider.CodexPaths(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(authPath), 0700))
	require.NoError(t, os.WriteFile(authPath, []byte(`{"OPENAI_API_KEY": "sk-1"}`), 0600))
	require.NoError(t, os.WriteFile(configPath, []byte("broken = [[["), 0600))

	r := doctor.CheckCodexFiles(home)
	assert.Equal(t, doctor.StatusFail, r.Status)
}

func TestCheckOpencode_MissingIsOK(t *testing.T) {
	r := doctor.CheckOpencode(filepath.Join(t.TempDir(), "opencode.json"))
	assert.Equal(t, doctor.StatusOK, r.Status)
}

func TestCheckOpencode_NoProviderSectionFails(t *testing.T) {
	path := testutil.TempOpencodeFile(t, `{"theme": "dark"}`)
	r := doctor.CheckOpencode(path)
	assert.Equal(t, doctor.StatusFail, r.Status)
}

func TestCheckOpencode_InvalidJSONWarns(t *testing.T) {
	path := testutil.TempOpencodeFile(t, "not json")
	r := doctor.CheckOpencode(path)
	assert.Equal(t, doctor.StatusWarn, r.Status)
}

func TestCheckOpencode_Healthy(t *testing.T) {
	path := testutil.TempOpencodeFile(t, `{"provider": {"anthropic": {"options": {}}}}`)
	r := doctor.CheckOpencode(path)
	assert.Equal(t, doctor.StatusOK, r.Status)
}

func TestRunAll(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.DefaultResponse = &testutil.Response{Output: []byte("1.0.0")}

	dir := t.TempDir()
	results := doctor.RunAll(context.Background(), fc,
		filepath.Join(dir, "configs.json"), t.TempDir(), filepath.Join(dir, "opencode.json"))

	// 바이너리 4개 + store + codex_files + opencode
	assert.Len(t, results, 7)
}
