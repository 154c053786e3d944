// Package store는 프로필 컬렉션의 로드/저장과 CRUD를 담당한다.
// 저장 파일은 configs.json 하나이며, 모든 명령이 매번 디스크에서
// 다시 로드하므로 파일이 유일한 source of truth다.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound는 존재하지 않는 프로필 id를 참조했을 때의 sentinel error다.
var ErrNotFound = errors.New("프로필을 찾을 수 없습니다")

// ProviderType은 프로필이 대상으로 하는 AI CLI 제공자 종류다.
type ProviderType string

const (
	// TypeClaude는 ANTHROPIC_* 환경변수를 사용하는 claude CLI다.
	TypeClaude ProviderType = "claude"
	// TypeGemini는 GEMINI_API_KEY 환경변수를 사용하는 gemini CLI다.
	TypeGemini ProviderType = "gemini"
	// TypeCodex는 ~/.codex 아래 파일로 인증하는 codex CLI다.
	TypeCodex ProviderType = "codex"
)

// AllTypes는 지원하는 제공자 종류 전체를 고정된 순서로 반환한다.
func AllTypes() []ProviderType {
	return []ProviderType{TypeClaude, TypeGemini, TypeCodex}
}

// ParseType은 소문자 태그를 ProviderType으로 변환한다.
func ParseType(s string) (ProviderType, error) {
	switch ProviderType(s) {
	case TypeClaude, TypeGemini, TypeCodex:
		return ProviderType(s), nil
	default:
		return "", fmt.Errorf("store.ParseType: 알 수 없는 제공자 종류: %q", s)
	}
}

// Profile은 하나의 제공자용 자격증명 레코드다.
type Profile struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Type    ProviderType `json:"config_type"`
	APIKey  string       `json:"api_key"`
	BaseURL string       `json:"base_url"`
	Active  bool         `json:"is_active"`
}

// Store는 프로필 컬렉션이다. 삽입 순서가 저장 시 그대로 유지된다.
type Store struct {
	Configs []Profile `json:"configs"`
}

// New는 빈 스토어를 생성한다.
func New() *Store {
	return &Store{}
}

// Load는 스토어 파일을 파싱한다. 파일 없음/파싱 실패 시 빈 스토어 반환 (graceful).
// 타입별 active 프로필이 여러 개인 손상 상태도 그대로 로드한다 —
// 다음 활성화 시점에 정규화된다.
func Load(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		return New()
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return New()
	}
	return &s
}

// Save는 스토어를 JSON 파일로 저장한다 (디렉토리 0700, 파일 0600).
// 임시 파일에 쓴 뒤 rename하므로 저장 도중 실패해도 기존 파일은 보존된다.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".configs-*.json")
	if err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("store.Save: %w", err)
	}
	return nil
}

// Add는 새 프로필을 생성해 뒤에 추가하고 반환한다. 생성 직후에는 비활성 상태다.
func (s *Store) Add(name string, t ProviderType, apiKey, baseURL string) Profile {
	p := Profile{
		ID:      uuid.New().String(),
		Name:    name,
		Type:    t,
		APIKey:  apiKey,
		BaseURL: baseURL,
		Active:  false,
	}
	s.Configs = append(s.Configs, p)
	return p
}

// Update는 id로 찾은 프로필의 name/apiKey/baseURL을 수정한다.
// id가 없으면 조용히 no-op한다 (참조 구현의 permissive 동작 유지).
func (s *Store) Update(id, name, apiKey, baseURL string) {
	for i := range s.Configs {
		if s.Configs[i].ID == id {
			s.Configs[i].Name = name
			s.Configs[i].APIKey = apiKey
			s.Configs[i].BaseURL = baseURL
			return
		}
	}
}

// Delete는 id로 찾은 프로필을 제거한다. 제거했으면 true를 반환한다.
func (s *Store) Delete(id string) bool {
	for i := range s.Configs {
		if s.Configs[i].ID == id {
			s.Configs = append(s.Configs[:i], s.Configs[i+1:]...)
			return true
		}
	}
	return false
}

// Find는 id로 프로필을 조회한다. 반환 포인터는 스토어 내부를 가리킨다.
func (s *Store) Find(id string) *Profile {
	for i := range s.Configs {
		if s.Configs[i].ID == id {
			return &s.Configs[i]
		}
	}
	return nil
}

// FindByName은 이름이 정확히 일치하는 프로필들을 반환한다.
// 이름에는 유일성 제약이 없으므로 복수 매칭이 가능하다.
func (s *Store) FindByName(name string) []*Profile {
	var found []*Profile
	for i := range s.Configs {
		if s.Configs[i].Name == name {
			found = append(found, &s.Configs[i])
		}
	}
	return found
}

// ActiveOf는 해당 타입의 active 프로필을 반환한다.
// 손상된 스토어에 복수 active가 있으면 첫 번째가 우선한다.
func (s *Store) ActiveOf(t ProviderType) *Profile {
	for i := range s.Configs {
		if s.Configs[i].Type == t && s.Configs[i].Active {
			return &s.Configs[i]
		}
	}
	return nil
}

// List는 프로필 목록의 복사본을 반환한다.
func (s *Store) List() []Profile {
	out := make([]Profile, len(s.Configs))
	copy(out, s.Configs)
	return out
}
