// Package prompt는 프로필 입력을 위한 대화형 폼을 제공한다.
package prompt

import (
	"fmt"
	"net/url"

	"github.com/charmbracelet/huh"

	"github.com/hbjs97/aictx/internal/store"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunProfileForm은 프로필 입력 폼을 실행한다.
func (h *HuhFormRunner) RunProfileForm(defaults *ProfileInput, typeLocked bool) (*ProfileInput, error) {
	input := &ProfileInput{Type: store.TypeClaude}
	if defaults != nil {
		*input = *defaults
	}

	urlValidate := func(s string) error {
		if s == "" {
			return nil // 비워두면 기본 endpoint 사용
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("올바른 URL 형식이 아닙니다")
		}
		return nil
	}

	var fields []huh.Field
	fields = append(fields,
		huh.NewInput().Title("프로필 이름").Value(&input.Name).Validate(huh.ValidateNotEmpty()),
	)
	if !typeLocked {
		fields = append(fields,
			huh.NewSelect[store.ProviderType]().
				Title("제공자 종류").
				Options(
					huh.NewOption("claude", store.TypeClaude),
					huh.NewOption("gemini", store.TypeGemini),
					huh.NewOption("codex", store.TypeCodex),
				).
				Value(&input.Type),
		)
	}
	fields = append(fields,
		huh.NewInput().Title("API 키").
			EchoMode(huh.EchoModePassword).
			Value(&input.APIKey).
			Validate(huh.ValidateNotEmpty()),
		huh.NewInput().Title("base URL (선택)").
			Description("비워두면 제공자 기본 endpoint 사용").
			Value(&input.BaseURL).
			Validate(urlValidate),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt.RunProfileForm: %w", err)
	}

	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt.RunConfirm: %w", err)
	}
	return confirm, nil
}
