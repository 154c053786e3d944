// Package testutil provides common test helpers for the aictx project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempStorePath returns a configs.json path inside a fresh temp directory.
// The file does not exist yet; store.Load treats that as an empty store.
func TempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "configs.json")
}

// TempStoreFile creates a temporary configs.json with the given content
// and returns its path. The file is automatically cleaned up.
func TempStoreFile(t *testing.T, content string) string {
	t.Helper()

	path := TempStorePath(t)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempStoreFile: write failed: %v", err)
	}
	return path
}

// TempOpencodeFile creates a temporary opencode.json with the given content
// and returns its path.
func TempOpencodeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "opencode.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempOpencodeFile: write failed: %v", err)
	}
	return path
}

// SeedStoreJSON returns a configs.json document with two claude profiles,
// one gemini profile and one codex profile. The first claude profile is active.
// IDs are fixed so tests can reference them directly.
func SeedStoreJSON() string {
	return `{
  "configs": [
    {
      "id": "claude-work",
      "name": "work",
      "config_type": "claude",
      "api_key": "sk-ant-work",
      "base_url": "",
      "is_active": true
    },
    {
      "id": "claude-personal",
      "name": "personal",
      "config_type": "claude",
      "api_key": "sk-ant-personal",
      "base_url": "https://proxy.example.com",
      "is_active": false
    },
    {
      "id": "gemini-main",
      "name": "main",
      "config_type": "gemini",
      "api_key": "AIzaMain",
      "base_url": "",
      "is_active": false
    },
    {
      "id": "codex-main",
      "name": "main",
      "config_type": "codex",
      "api_key": "sk-codex-main",
      "base_url": "",
      "is_active": false
    }
  ]
}`
}
