package opencode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/hbjs97/aictx/internal/opencode"
	"github.com/hbjs97/aictx/internal/store"
)

// seedStore는 타입별 프로필이 하나씩 있는 스토어를 만든다.
func seedStore() (*store.Store, map[store.ProviderType]string) {
	s := store.New()
	ids := map[store.ProviderType]string{
		store.TypeClaude: s.Add("claude-work", store.TypeClaude, "sk-ant-1", "").ID,
		store.TypeGemini: s.Add("gemini-main", store.TypeGemini, "AIza1", "https://gproxy.example.com").ID,
		store.TypeCodex:  s.Add("codex-main", store.TypeCodex, "sk-codex-1", "").ID,
	}
	return s, ids
}

const foreignDoc = `{
  "$schema": "https://opencode.ai/config.json",
  "theme": "catppuccin",
  "provider": {
    "anthropic": {
      "models": {
        "claude-sonnet-4-5": {}
      },
      "options": {
        "apiKey": "old-key",
        "baseURL": "https://existing.example.com"
      }
    },
    "openai": {
      "options": {}
    }
  },
  "tui": {
    "scroll_speed": 3
  },
  "plugin": ["my-plugin"]
}`

func TestMerge_OverwritesAPIKeyOnly(t *testing.T) {
	st, ids := seedStore()

	out, err := opencode.Merge([]byte(foreignDoc), st, opencode.Selection{ClaudeID: ids[store.TypeClaude]})
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-1", gjson.GetBytes(out, "provider.anthropic.options.apiKey").String())
	// 빈 endpoint는 기존 baseURL을 건드리지 않는다 (의도된 비대칭)
	assert.Equal(t, "https://existing.example.com", gjson.GetBytes(out, "provider.anthropic.options.baseURL").String())
}

func TestMerge_PreservesForeignFields(t *testing.T) {
	st, ids := seedStore()

	out, err := opencode.Merge([]byte(foreignDoc), st, opencode.Selection{
		ClaudeID: ids[store.TypeClaude],
		CodexID:  ids[store.TypeCodex],
	})
	require.NoError(t, err)

	// 이 시스템이 모르는 필드는 모두 살아남아야 한다
	assert.Equal(t, "catppuccin", gjson.GetBytes(out, "theme").String())
	assert.Equal(t, int64(3), gjson.GetBytes(out, "tui.scroll_speed").Int())
	assert.Equal(t, "my-plugin", gjson.GetBytes(out, "plugin.0").String())
	assert.True(t, gjson.GetBytes(out, "provider.anthropic.models.claude-sonnet-4-5").Exists())
	assert.Equal(t, "https://opencode.ai/config.json", gjson.GetBytes(out, "$schema").String())
}

func TestMerge_NonEmptyEndpointOverwritesBaseURL(t *testing.T) {
	st, ids := seedStore()

	doc := `{"provider": {"google": {"options": {"baseURL": "https://old.example.com"}}}}`
	out, err := opencode.Merge([]byte(doc), st, opencode.Selection{GeminiID: ids[store.TypeGemini]})
	require.NoError(t, err)

	assert.Equal(t, "AIza1", gjson.GetBytes(out, "provider.google.options.apiKey").String())
	assert.Equal(t, "https://gproxy.example.com", gjson.GetBytes(out, "provider.google.options.baseURL").String())
}

func TestMerge_UnknownIDSkipsSlot(t *testing.T) {
	st, _ := seedStore()

	out, err := opencode.Merge([]byte(foreignDoc), st, opencode.Selection{ClaudeID: "no-such-id"})
	require.NoError(t, err)

	assert.Equal(t, "old-key", gjson.GetBytes(out, "provider.anthropic.options.apiKey").String())
}

func TestMerge_TypeMismatchSkipsSlot(t *testing.T) {
	st, ids := seedStore()

	// gemini 프로필 id가 claude 슬롯으로 들어와도 주입되지 않는다
	out, err := opencode.Merge([]byte(foreignDoc), st, opencode.Selection{ClaudeID: ids[store.TypeGemini]})
	require.NoError(t, err)

	assert.Equal(t, "old-key", gjson.GetBytes(out, "provider.anthropic.options.apiKey").String())
}

func TestMerge_MissingProviderSection(t *testing.T) {
	st, ids := seedStore()

	_, err := opencode.Merge([]byte(`{"theme": "dark"}`), st, opencode.Selection{ClaudeID: ids[store.TypeClaude]})
	assert.ErrorIs(t, err, opencode.ErrSchema)
}

func TestMerge_InvalidDocumentFallsBackToTemplate(t *testing.T) {
	st, ids := seedStore()

	out, err := opencode.Merge([]byte("not json at all"), st, opencode.Selection{ClaudeID: ids[store.TypeClaude]})
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-1", gjson.GetBytes(out, "provider.anthropic.options.apiKey").String())
	assert.Equal(t, "https://opencode.ai/config.json", gjson.GetBytes(out, "$schema").String())
}

func TestMerge_EmptyDocumentUsesTemplate(t *testing.T) {
	st, ids := seedStore()

	out, err := opencode.Merge(nil, st, opencode.Selection{
		ClaudeID: ids[store.TypeClaude],
		GeminiID: ids[store.TypeGemini],
		CodexID:  ids[store.TypeCodex],
	})
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-1", gjson.GetBytes(out, "provider.anthropic.options.apiKey").String())
	assert.Equal(t, "AIza1", gjson.GetBytes(out, "provider.google.options.apiKey").String())
	assert.Equal(t, "sk-codex-1", gjson.GetBytes(out, "provider.openai.options.apiKey").String())
	// gemini만 endpoint 재정의가 있다
	assert.Equal(t, "https://gproxy.example.com", gjson.GetBytes(out, "provider.google.options.baseURL").String())
	assert.False(t, gjson.GetBytes(out, "provider.anthropic.options.baseURL").Exists())
}

func TestMergeFile_CreatesDocumentAndParents(t *testing.T) {
	st, ids := seedStore()
	path := filepath.Join(t.TempDir(), "opencode", "opencode.json")

	require.NoError(t, opencode.MergeFile(path, st, opencode.Selection{CodexID: ids[store.TypeCodex]}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, gjson.ValidBytes(data))
	assert.Equal(t, "sk-codex-1", gjson.GetBytes(data, "provider.openai.options.apiKey").String())
}

func TestMergeFile_RoundTripPreservesForeignFields(t *testing.T) {
	st, ids := seedStore()
	path := filepath.Join(t.TempDir(), "opencode.json")
	require.NoError(t, os.WriteFile(path, []byte(foreignDoc), 0600))

	require.NoError(t, opencode.MergeFile(path, st, opencode.Selection{ClaudeID: ids[store.TypeClaude]}))
	// 두 번 병합해도 결과는 안정적이어야 한다
	require.NoError(t, opencode.MergeFile(path, st, opencode.Selection{ClaudeID: ids[store.TypeClaude]}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "catppuccin", gjson.GetBytes(data, "theme").String())
	assert.Equal(t, "sk-ant-1", gjson.GetBytes(data, "provider.anthropic.options.apiKey").String())
	assert.Equal(t, "https://existing.example.com", gjson.GetBytes(data, "provider.anthropic.options.baseURL").String())
}
