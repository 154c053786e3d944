package prompt

import "github.com/hbjs97/aictx/internal/store"

// ProfileInput은 프로필 생성/수정 시 사용자 입력 값이다.
type ProfileInput struct {
	Name    string
	Type    store.ProviderType
	APIKey  string
	BaseURL string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunProfileForm은 프로필 입력 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다 (수정 모드).
	// typeLocked가 true면 제공자 종류 선택을 생략한다 — 타입은 생성 후 불변이다.
	RunProfileForm(defaults *ProfileInput, typeLocked bool) (*ProfileInput, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
