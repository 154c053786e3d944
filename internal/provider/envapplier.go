package provider

import (
	"fmt"

	"github.com/hbjs97/aictx/internal/envreg"
	"github.com/hbjs97/aictx/internal/store"
)

const (
	claudeKeyVar = "ANTHROPIC_AUTH_TOKEN"
	claudeURLVar = "ANTHROPIC_BASE_URL"
	geminiKeyVar = "GEMINI_API_KEY"
	geminiURLVar = "GOOGLE_GEMINI_BASE_URL"
)

// envApplier는 영구 환경변수 한 쌍(자격증명 + endpoint 재정의)을 쓰는 Applier다.
// claude와 gemini가 변수 이름만 달리해 공유한다.
type envApplier struct {
	t      store.ProviderType
	keyVar string
	urlVar string
	env    envreg.Writer
}

var _ Applier = (*envApplier)(nil)

// NewClaude는 claude CLI용 Applier를 생성한다.
func NewClaude(env envreg.Writer) Applier {
	return &envApplier{t: store.TypeClaude, keyVar: claudeKeyVar, urlVar: claudeURLVar, env: env}
}

// NewGemini는 gemini CLI용 Applier를 생성한다.
func NewGemini(env envreg.Writer) Applier {
	return &envApplier{t: store.TypeGemini, keyVar: geminiKeyVar, urlVar: geminiURLVar, env: env}
}

func (a *envApplier) Type() store.ProviderType {
	return a.t
}

// Apply는 자격증명 변수를 설정하고, BaseURL이 비어 있으면 endpoint 변수를
// 삭제한다. 빈 endpoint가 이전 값으로 남아 "재정의 없음"이 아닌 상태가 되는
// 것을 막기 위해서다.
func (a *envApplier) Apply(p *store.Profile) error {
	if err := a.env.Set(a.keyVar, p.APIKey); err != nil {
		return fmt.Errorf("provider.Apply[%s]: %w", a.t, err)
	}
	if p.BaseURL != "" {
		if err := a.env.Set(a.urlVar, p.BaseURL); err != nil {
			return fmt.Errorf("provider.Apply[%s]: %w", a.t, err)
		}
		return nil
	}
	if err := a.env.Delete(a.urlVar); err != nil {
		return fmt.Errorf("provider.Apply[%s]: %w", a.t, err)
	}
	return nil
}

// Clear는 두 변수를 모두 삭제한다. 변수가 없는 경우는 Writer가 무시한다.
func (a *envApplier) Clear() error {
	if err := a.env.Delete(a.keyVar); err != nil {
		return fmt.Errorf("provider.Clear[%s]: %w", a.t, err)
	}
	if err := a.env.Delete(a.urlVar); err != nil {
		return fmt.Errorf("provider.Clear[%s]: %w", a.t, err)
	}
	return nil
}
