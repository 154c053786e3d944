// Package envreg abstracts persistent user environment variable mutation.
// Production code uses Writer interface; tests inject FakeEnvWriter from testutil.
// The real implementation writes to the per-user registry scope on Windows and
// fails with ErrUnsupported everywhere else.
package envreg

import "errors"

// ErrUnsupported는 지원하지 않는 플랫폼에서 환경변수 변경을 시도했을 때 반환된다.
var ErrUnsupported = errors.New("environment variable modification is only supported on Windows")

// Writer는 사용자 영구 환경변수를 설정/삭제하는 interface다.
// 프로세스 로컬 환경이 아니라 새 프로세스가 읽는 영구 스코프를 대상으로 한다.
type Writer interface {
	// Set은 변수를 설정한다.
	Set(name, value string) error

	// Delete는 변수를 삭제한다. 변수가 없으면 에러가 아니다.
	Delete(name string) error
}
