package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/aictx/internal/store"
)

// resolveProfile은 인자(id 또는 이름)를 프로필 id로 변환한다.
// 이름에는 유일성 제약이 없으므로 복수 매칭은 에러다 — 그 경우 id를 쓰게 안내한다.
// 엔진 연산은 id 기반이고, 이름 해석은 전적으로 CLI의 편의 기능이다.
func resolveProfile(st *store.Store, arg string) (*store.Profile, error) {
	if p := st.Find(arg); p != nil {
		return p, nil
	}
	// list 출력이 id 앞 8자만 보여주므로 유일한 접두사 매칭도 허용한다.
	if len(arg) >= 8 {
		var prefixed []*store.Profile
		for i := range st.Configs {
			if strings.HasPrefix(st.Configs[i].ID, arg) {
				prefixed = append(prefixed, &st.Configs[i])
			}
		}
		if len(prefixed) == 1 {
			return prefixed[0], nil
		}
	}
	matches := st.FindByName(arg)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("cli.resolveProfile: %w: %s", ErrNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("cli.resolveProfile: 이름 %q에 프로필이 %d개 — id로 지정하세요", arg, len(matches))
	}
}
