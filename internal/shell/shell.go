package shell

import (
	"fmt"
	"strings"

	"github.com/hbjs97/aictx/internal/provider"
	"github.com/hbjs97/aictx/internal/store"
)

// Exports는 active인 환경변수 기반 프로필들의 shell export 명령을 생성한다.
// codex는 파일 기반이므로 포함되지 않는다. endpoint가 비어 있으면
// 해당 변수는 unset해서 이전 세션의 재정의가 남지 않게 한다.
func Exports(profiles []store.Profile, shellType string) string {
	var b strings.Builder
	for _, p := range profiles {
		if !p.Active {
			continue
		}
		keyVar, urlVar, ok := provider.EnvVars(p.Type)
		if !ok {
			continue
		}
		b.WriteString(export(shellType, keyVar, p.APIKey))
		if p.BaseURL != "" {
			b.WriteString(export(shellType, urlVar, p.BaseURL))
		} else {
			b.WriteString(unset(shellType, urlVar))
		}
	}
	return b.String()
}

// Unsets는 환경변수 기반 제공자 전체의 변수를 제거하는 명령을 생성한다.
func Unsets(shellType string) string {
	var b strings.Builder
	for _, t := range store.AllTypes() {
		keyVar, urlVar, ok := provider.EnvVars(t)
		if !ok {
			continue
		}
		b.WriteString(unset(shellType, keyVar))
		b.WriteString(unset(shellType, urlVar))
	}
	return b.String()
}

func export(shellType, name, value string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf("set -gx %s %q\n", name, value)
	default: // bash, zsh, sh
		return fmt.Sprintf("export %s=%q\n", name, value)
	}
}

func unset(shellType, name string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf("set -e %s\n", name)
	default:
		return fmt.Sprintf("unset %s\n", name)
	}
}
