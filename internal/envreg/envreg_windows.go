//go:build windows

package envreg

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	hwndBroadcast      = 0xffff
	wmSettingChange    = 0x001a
	smtoAbortIfHung    = 0x0002
	broadcastTimeoutMS = 5000
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

// registryWriter는 HKEY_CURRENT_USER\Environment를 대상으로 하는 Writer 구현이다.
type registryWriter struct{}

var _ Writer = (*registryWriter)(nil)

// NewRegistryWriter는 플랫폼 기본 Writer를 생성한다.
func NewRegistryWriter() Writer {
	return &registryWriter{}
}

// Set은 사용자 환경변수를 레지스트리에 기록하고 변경을 broadcast한다.
func (w *registryWriter) Set(name, value string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, "Environment", registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("envreg.Set: %w", err)
	}
	defer k.Close()
	if err := k.SetStringValue(name, value); err != nil {
		return fmt.Errorf("envreg.Set: %w", err)
	}
	broadcastSettingChange()
	return nil
}

// Delete는 사용자 환경변수를 레지스트리에서 제거하고 변경을 broadcast한다.
// 값이 없으면 no-op다.
func (w *registryWriter) Delete(name string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, "Environment", registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("envreg.Delete: %w", err)
	}
	defer k.Close()
	if err := k.DeleteValue(name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("envreg.Delete: %w", err)
	}
	broadcastSettingChange()
	return nil
}

// broadcastSettingChange는 WM_SETTINGCHANGE("Environment")를 전체 윈도우에 보낸다.
// 이미 떠 있는 프로세스가 변경을 감지할 수 있게 하는 best effort이며,
// 타임아웃/실패는 무시한다 (새 터미널은 어차피 레지스트리를 읽는다).
func broadcastSettingChange() {
	env, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}
	procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(env)),
		smtoAbortIfHung,
		broadcastTimeoutMS,
		0,
	)
}
