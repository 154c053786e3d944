package cli

import (
	"github.com/hbjs97/aictx/internal/envreg"
	"github.com/hbjs97/aictx/internal/opencode"
	"github.com/hbjs97/aictx/internal/store"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNotFound는 존재하지 않는 프로필 참조의 sentinel error다.
	ErrNotFound = store.ErrNotFound
	// ErrUnsupported는 지원하지 않는 플랫폼에서의 환경변수 변경 sentinel error다.
	ErrUnsupported = envreg.ErrUnsupported
	// ErrSchema는 opencode 문서 스키마 오류의 sentinel error다.
	ErrSchema = opencode.ErrSchema
)
