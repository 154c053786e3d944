// Package provider는 프로필을 외부 상태로 전파하는 타입별 Applier를 제공한다.
// claude/gemini는 영구 환경변수, codex는 ~/.codex 아래 파일 쌍을 대상으로 한다.
package provider

import (
	"fmt"

	"github.com/hbjs97/aictx/internal/envreg"
	"github.com/hbjs97/aictx/internal/store"
)

// Applier는 하나의 제공자 종류에 대한 apply/clear 연산 쌍이다.
// 제공자 종류를 추가하려면 이 interface의 구현 하나를 추가하고
// ForType에 매핑하면 된다.
type Applier interface {
	// Type은 이 Applier가 담당하는 제공자 종류다.
	Type() store.ProviderType

	// Apply는 프로필의 자격증명을 외부 상태로 전파한다.
	Apply(p *store.Profile) error

	// Clear는 이 제공자 종류의 외부 상태를 제거한다.
	Clear() error
}

// ForType은 제공자 종류에 해당하는 Applier를 반환한다.
func ForType(t store.ProviderType, env envreg.Writer, home string) (Applier, error) {
	switch t {
	case store.TypeClaude:
		return NewClaude(env), nil
	case store.TypeGemini:
		return NewGemini(env), nil
	case store.TypeCodex:
		return NewCodex(home), nil
	default:
		return nil, fmt.Errorf("provider.ForType: 알 수 없는 제공자 종류: %q", t)
	}
}

// EnvVars는 환경변수 기반 제공자의 (자격증명 변수, endpoint 변수) 이름을 반환한다.
// 파일 기반 제공자(codex)는 ok=false다.
func EnvVars(t store.ProviderType) (keyVar, urlVar string, ok bool) {
	switch t {
	case store.TypeClaude:
		return claudeKeyVar, claudeURLVar, true
	case store.TypeGemini:
		return geminiKeyVar, geminiURLVar, true
	default:
		return "", "", false
	}
}
