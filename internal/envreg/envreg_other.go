//go:build !windows

package envreg

// unsupportedWriter는 Windows 외 플랫폼용 Writer다. 모든 호출이 ErrUnsupported로 실패한다.
// 환경변수 외 기능(프로필 CRUD, codex 파일, opencode 병합)은 플랫폼과 무관하게 동작한다.
type unsupportedWriter struct{}

var _ Writer = (*unsupportedWriter)(nil)

// NewRegistryWriter는 플랫폼 기본 Writer를 생성한다.
func NewRegistryWriter() Writer {
	return &unsupportedWriter{}
}

func (w *unsupportedWriter) Set(name, value string) error {
	return ErrUnsupported
}

func (w *unsupportedWriter) Delete(name string) error {
	return ErrUnsupported
}
