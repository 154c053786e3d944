// Package opencode는 opencode가 소유한 공유 설정 문서(opencode.json)에
// 선택된 프로필들의 자격증명을 병합한다. 문서는 고정 스키마로 파싱하지 않고
// untyped JSON으로 다루므로 이 시스템이 모르는 필드는 그대로 보존된다.
package opencode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/hbjs97/aictx/internal/store"
)

// ErrSchema는 문서에 필수인 최상위 provider 섹션이 없을 때 반환된다.
var ErrSchema = errors.New("opencode 문서에 provider 섹션이 없습니다")

// defaultDocument는 문서가 없거나 파싱 불가능할 때 시작점으로 쓰는 기본 템플릿이다.
const defaultDocument = `{
  "$schema": "https://opencode.ai/config.json",
  "provider": {
    "anthropic": {
      "options": {}
    },
    "google": {
      "options": {}
    },
    "openai": {
      "options": {}
    }
  }
}
`

// Selection은 슬롯별로 병합할 프로필 id다. 각 항목은 선택 사항이다.
type Selection struct {
	ClaudeID string
	GeminiID string
	CodexID  string
}

// slotFor는 제공자 종류를 opencode 문서의 provider 슬롯 이름으로 변환한다.
func slotFor(t store.ProviderType) string {
	switch t {
	case store.TypeClaude:
		return "anthropic"
	case store.TypeGemini:
		return "google"
	case store.TypeCodex:
		return "openai"
	default:
		return ""
	}
}

// Merge는 문서에 선택된 프로필들의 자격증명을 병합해 돌려준다.
// 알 수 없는 id, 타입 불일치는 조용히 건너뛴다 — 사용자가 설정하지 않은
// 제공자 슬롯이 섞여 들어오는 것은 정상 상황이다.
func Merge(doc []byte, st *store.Store, sel Selection) ([]byte, error) {
	if len(doc) == 0 || !gjson.ValidBytes(doc) {
		doc = []byte(defaultDocument)
	}

	prov := gjson.GetBytes(doc, "provider")
	if !prov.Exists() || !prov.IsObject() {
		return nil, ErrSchema
	}

	slots := []struct {
		id string
		t  store.ProviderType
	}{
		{sel.ClaudeID, store.TypeClaude},
		{sel.GeminiID, store.TypeGemini},
		{sel.CodexID, store.TypeCodex},
	}

	var err error
	for _, s := range slots {
		doc, err = inject(doc, st, s.id, s.t)
		if err != nil {
			return nil, err
		}
	}

	return pretty.Pretty(doc), nil
}

// inject는 하나의 슬롯에 프로필을 주입한다. apiKey는 항상 덮어쓰지만
// baseURL은 endpoint가 비어 있지 않을 때만 덮어쓴다. 빈 endpoint로
// 기존 baseURL을 지우지 않는 것은 의도된 비대칭이다 — 이 문서의 기본값은
// opencode의 것이고 이 시스템이 파괴해서는 안 된다.
func inject(doc []byte, st *store.Store, id string, t store.ProviderType) ([]byte, error) {
	if id == "" {
		return doc, nil
	}
	p := st.Find(id)
	if p == nil || p.Type != t {
		return doc, nil
	}

	slot := slotFor(t)
	doc, err := sjson.SetBytes(doc, "provider."+slot+".options.apiKey", p.APIKey)
	if err != nil {
		return nil, fmt.Errorf("opencode.Merge: %w", err)
	}
	if p.BaseURL != "" {
		doc, err = sjson.SetBytes(doc, "provider."+slot+".options.baseURL", p.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("opencode.Merge: %w", err)
		}
	}
	return doc, nil
}

// MergeFile은 경로의 문서를 읽어 병합한 뒤 같은 경로에 다시 쓴다.
// 문서가 없으면 기본 템플릿에서 시작한다.
func MergeFile(path string, st *store.Store, sel Selection) error {
	doc, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("opencode.MergeFile: %w", err)
	}

	merged, err := Merge(doc, st, sel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("opencode.MergeFile: %w", err)
	}
	if err := os.WriteFile(path, merged, 0600); err != nil {
		return fmt.Errorf("opencode.MergeFile: %w", err)
	}
	return nil
}
