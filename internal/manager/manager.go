// Package manager는 스토어 변경과 Applier 호출을 묶는 활성화 상태 기계다.
// 타입별로 최대 하나의 프로필만 active라는 불변식을 활성화 시점에 강제한다.
package manager

import (
	"fmt"

	"github.com/hbjs97/aictx/internal/envreg"
	"github.com/hbjs97/aictx/internal/opencode"
	"github.com/hbjs97/aictx/internal/provider"
	"github.com/hbjs97/aictx/internal/store"
)

// Manager는 프로필 연산의 진입점이다. 모든 연산이 스토어를 디스크에서
// 다시 로드하고 변경 후 다시 쓰므로 호출 간 공유 메모리 상태가 없다.
type Manager struct {
	// StorePath는 configs.json 경로다.
	StorePath string
	// OpencodePath는 공유 opencode.json 경로다.
	OpencodePath string
	// Env는 영구 환경변수 Writer다.
	Env envreg.Writer
	// Home은 파일 기반 제공자의 기준 홈 디렉토리다.
	Home string
}

// New는 Manager를 생성한다.
func New(storePath, opencodePath string, env envreg.Writer, home string) *Manager {
	return &Manager{
		StorePath:    storePath,
		OpencodePath: opencodePath,
		Env:          env,
		Home:         home,
	}
}

// List는 저장된 프로필 목록을 반환한다.
func (m *Manager) List() []store.Profile {
	return store.Load(m.StorePath).List()
}

// Add는 새 프로필을 생성하고 저장한 뒤 반환한다. 생성 직후에는 비활성이다.
func (m *Manager) Add(name string, t store.ProviderType, apiKey, baseURL string) (store.Profile, error) {
	st := store.Load(m.StorePath)
	p := st.Add(name, t, apiKey, baseURL)
	if err := st.Save(m.StorePath); err != nil {
		return store.Profile{}, fmt.Errorf("manager.Add: %w", err)
	}
	return p, nil
}

// Update는 프로필의 name/apiKey/baseURL을 수정한다. id가 없으면 no-op다.
// 대상이 active면 저장 후 다시 apply해서 외부 상태를 수정된 값과 맞춘다.
func (m *Manager) Update(id, name, apiKey, baseURL string) error {
	st := store.Load(m.StorePath)
	st.Update(id, name, apiKey, baseURL)
	if err := st.Save(m.StorePath); err != nil {
		return fmt.Errorf("manager.Update: %w", err)
	}

	p := st.Find(id)
	if p == nil || !p.Active {
		return nil
	}
	ap, err := provider.ForType(p.Type, m.Env, m.Home)
	if err != nil {
		return fmt.Errorf("manager.Update: %w", err)
	}
	if err := ap.Apply(p); err != nil {
		return fmt.Errorf("manager.Update: %w", err)
	}
	return nil
}

// Delete는 프로필을 제거한다. 대상이 active였으면 해당 타입의 외부 상태를
// 먼저 정리하고, 정리 실패 여부와 무관하게 제거는 항상 저장한다.
func (m *Manager) Delete(id string) error {
	st := store.Load(m.StorePath)
	p := st.Find(id)

	var clearErr error
	if p != nil && p.Active {
		ap, err := provider.ForType(p.Type, m.Env, m.Home)
		if err != nil {
			clearErr = err
		} else {
			clearErr = ap.Clear()
		}
	}

	st.Delete(id)
	if err := st.Save(m.StorePath); err != nil {
		return fmt.Errorf("manager.Delete: %w", err)
	}
	if clearErr != nil {
		return fmt.Errorf("manager.Delete: %w", clearErr)
	}
	return nil
}

// Activate는 프로필을 활성화한다. 같은 타입의 다른 프로필은 모두 비활성화되고
// 다른 타입은 건드리지 않는다. 저장이 apply보다 먼저다 — apply가 실패해도
// 스토어는 의도를 반영하며, 호출자가 에러를 보고 재시도해 수습한다.
func (m *Manager) Activate(id string) error {
	st := store.Load(m.StorePath)
	target := st.Find(id)
	if target == nil {
		return fmt.Errorf("manager.Activate: %w: %s", store.ErrNotFound, id)
	}

	// 손상된 스토어에 같은 타입 active가 여럿 있어도 여기서 정규화된다.
	for i := range st.Configs {
		if st.Configs[i].Type == target.Type {
			st.Configs[i].Active = st.Configs[i].ID == id
		}
	}

	if err := st.Save(m.StorePath); err != nil {
		return fmt.Errorf("manager.Activate: %w", err)
	}

	ap, err := provider.ForType(target.Type, m.Env, m.Home)
	if err != nil {
		return fmt.Errorf("manager.Activate: %w", err)
	}
	if err := ap.Apply(target); err != nil {
		return fmt.Errorf("manager.Activate: %w", err)
	}
	return nil
}

// Deactivate는 active인 프로필을 비활성화하고 외부 상태를 정리한다.
// active가 아니거나 id가 없으면 no-op다.
func (m *Manager) Deactivate(id string) error {
	st := store.Load(m.StorePath)
	p := st.Find(id)
	if p == nil || !p.Active {
		return nil
	}

	p.Active = false
	if err := st.Save(m.StorePath); err != nil {
		return fmt.Errorf("manager.Deactivate: %w", err)
	}

	ap, err := provider.ForType(p.Type, m.Env, m.Home)
	if err != nil {
		return fmt.Errorf("manager.Deactivate: %w", err)
	}
	if err := ap.Clear(); err != nil {
		return fmt.Errorf("manager.Deactivate: %w", err)
	}
	return nil
}

// Sync는 선택된 프로필들을 공유 opencode 문서에 병합한다.
func (m *Manager) Sync(sel opencode.Selection) error {
	st := store.Load(m.StorePath)
	return opencode.MergeFile(m.OpencodePath, st, sel)
}

// ActiveSelection은 타입별 active 프로필 id로 채운 Selection을 반환한다.
// sync에 슬롯 지정이 없을 때의 기본값이다.
func (m *Manager) ActiveSelection() opencode.Selection {
	st := store.Load(m.StorePath)
	var sel opencode.Selection
	if p := st.ActiveOf(store.TypeClaude); p != nil {
		sel.ClaudeID = p.ID
	}
	if p := st.ActiveOf(store.TypeGemini); p != nil {
		sel.GeminiID = p.ID
	}
	if p := st.ActiveOf(store.TypeCodex); p != nil {
		sel.CodexID = p.ID
	}
	return sel
}
