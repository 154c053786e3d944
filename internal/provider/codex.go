package provider

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/aictx/internal/store"
)

// DefaultCodexBaseURL은 프로필에 endpoint 재정의가 없을 때 쓰는 기본 URL이다.
const DefaultCodexBaseURL = "https://api.openai.com/v1"

// codexConfigTemplate은 codex CLI가 읽는 config.toml의 고정 템플릿이다.
// base_url 한 줄만 프로필에서 치환되고 나머지는 codex와의 설정 계약이므로
// byte 단위로 고정이다.
const codexConfigTemplate = `model = "gpt-5-codex"
model_provider = "aictx"
model_reasoning_effort = "high"
disable_response_storage = true

[model_providers.aictx]
name = "aictx"
base_url = %q
wire_api = "responses"
requires_openai_auth = true
`

// codexApplier는 ~/.codex 아래 auth.json과 config.toml 쌍을 쓰는 Applier다.
type codexApplier struct {
	home string
}

var _ Applier = (*codexApplier)(nil)

// NewCodex는 codex CLI용 Applier를 생성한다. home은 사용자 홈 디렉토리다.
func NewCodex(home string) Applier {
	return &codexApplier{home: home}
}

func (a *codexApplier) Type() store.ProviderType {
	return store.TypeCodex
}

func (a *codexApplier) dir() string {
	return filepath.Join(a.home, ".codex")
}

// AuthPath는 자격증명이 기록되는 auth.json 경로다.
func (a *codexApplier) AuthPath() string {
	return filepath.Join(a.dir(), "auth.json")
}

// ConfigPath는 config.toml 경로다.
func (a *codexApplier) ConfigPath() string {
	return filepath.Join(a.dir(), "config.toml")
}

// Apply는 auth.json과 config.toml을 프로필 값으로 다시 쓴다.
// 이전 프로필의 파일은 통째로 덮어쓰므로 stale 값이 남지 않는다.
func (a *codexApplier) Apply(p *store.Profile) error {
	if err := os.MkdirAll(a.dir(), 0700); err != nil {
		return fmt.Errorf("provider.Apply[codex]: %w", err)
	}

	auth, err := json.MarshalIndent(map[string]string{"OPENAI_API_KEY": p.APIKey}, "", "  ")
	if err != nil {
		return fmt.Errorf("provider.Apply[codex]: %w", err)
	}
	if err := os.WriteFile(a.AuthPath(), auth, 0600); err != nil {
		return fmt.Errorf("provider.Apply[codex]: %w", err)
	}

	baseURL := p.BaseURL
	if baseURL == "" {
		baseURL = DefaultCodexBaseURL
	}
	cfg := fmt.Sprintf(codexConfigTemplate, baseURL)
	if err := os.WriteFile(a.ConfigPath(), []byte(cfg), 0600); err != nil {
		return fmt.Errorf("provider.Apply[codex]: %w", err)
	}
	return nil
}

// Clear는 두 파일을 삭제한다. 파일이 없는 경우는 에러가 아니다.
func (a *codexApplier) Clear() error {
	for _, path := range []string{a.AuthPath(), a.ConfigPath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("provider.Clear[codex]: %w", err)
		}
	}
	return nil
}

// CodexPaths는 홈 디렉토리 기준 (auth.json, config.toml) 경로를 반환한다.
// doctor 진단에서 파일 쌍의 일관성을 확인할 때 사용한다.
func CodexPaths(home string) (authPath, configPath string) {
	a := &codexApplier{home: home}
	return a.AuthPath(), a.ConfigPath()
}
