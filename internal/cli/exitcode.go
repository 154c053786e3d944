package cli

import (
	"errors"
)

// ExitCode는 aictx의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitNotFound는 존재하지 않는 프로필 참조다.
	ExitNotFound ExitCode = 2
	// ExitUnsupported는 지원하지 않는 플랫폼에서의 환경변수 변경이다.
	ExitUnsupported ExitCode = 3
	// ExitSchema는 opencode 문서 스키마 오류다.
	ExitSchema ExitCode = 4
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrUnsupported):
		return ExitUnsupported
	case errors.Is(err, ErrSchema):
		return ExitSchema
	default:
		return ExitGeneral
	}
}
