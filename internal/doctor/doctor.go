// Package doctor는 aictx 환경 진단을 수행한다.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/gjson"

	"github.com/hbjs97/aictx/internal/cmdexec"
	"github.com/hbjs97/aictx/internal/provider"
	"github.com/hbjs97/aictx/internal/store"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckBinaries는 다운스트림 CLI(claude, codex, gemini, opencode)의 설치 여부를
// 확인한다. 없는 바이너리는 WARN이다 — aictx 자체는 해당 CLI 없이도 동작한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander) []DiagResult {
	binaries := []struct {
		name    string
		install string
	}{
		{"claude", "npm install -g @anthropic-ai/claude-code"},
		{"codex", "npm install -g @openai/codex"},
		{"gemini", "npm install -g @google/gemini-cli"},
		{"opencode", "https://opencode.ai/docs"},
	}

	var results []DiagResult
	for _, b := range binaries {
		out, err := cmd.Run(ctx, b.name, "--version")
		if err != nil {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", b.name),
				Fix:     fmt.Sprintf("설치: %s", b.install),
			})
		} else {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  StatusOK,
				Message: firstLine(string(out)),
			})
		}
	}
	return results
}

// CheckStore는 스토어 파일의 상태를 확인한다. Load는 손상을 숨기므로
// 여기서는 엄격하게 파싱해 손상을 보고한다.
func CheckStore(path string) DiagResult {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DiagResult{
			Name:    "store",
			Status:  StatusOK,
			Message: "아직 저장된 프로필 없음",
		}
	}
	if err != nil {
		return DiagResult{
			Name:    "store",
			Status:  StatusFail,
			Message: fmt.Sprintf("스토어 파일 읽기 실패: %v", err),
		}
	}

	var s store.Store
	if err := json.Unmarshal(data, &s); err != nil {
		return DiagResult{
			Name:    "store",
			Status:  StatusFail,
			Message: "스토어 파일 손상 — 다음 저장 시 빈 스토어로 초기화됨",
			Fix:     fmt.Sprintf("%s 백업 후 수동 복구", path),
		}
	}

	for _, t := range store.AllTypes() {
		actives := 0
		for _, p := range s.Configs {
			if p.Type == t && p.Active {
				actives++
			}
		}
		if actives > 1 {
			return DiagResult{
				Name:    "store",
				Status:  StatusWarn,
				Message: fmt.Sprintf("타입 %s에 active 프로필이 %d개 — 다음 활성화 시 정규화됨", t, actives),
			}
		}
	}

	return DiagResult{
		Name:    "store",
		Status:  StatusOK,
		Message: fmt.Sprintf("프로필 %d개", len(s.Configs)),
	}
}

// CheckCodexFiles는 ~/.codex의 auth.json/config.toml 쌍의 일관성을 확인한다.
func CheckCodexFiles(home string) DiagResult {
	authPath, configPath := provider.CodexPaths(home)

	authData, authErr := os.ReadFile(authPath)
	configData, configErr := os.ReadFile(configPath)

	switch {
	case os.IsNotExist(authErr) && os.IsNotExist(configErr):
		return DiagResult{
			Name:    "codex_files",
			Status:  StatusOK,
			Message: "codex 프로필 미적용 (파일 없음)",
		}
	case os.IsNotExist(authErr) != os.IsNotExist(configErr):
		return DiagResult{
			Name:    "codex_files",
			Status:  StatusWarn,
			Message: "auth.json/config.toml 중 하나만 존재",
			Fix:     "codex 프로필을 다시 활성화하면 두 파일이 함께 기록됨",
		}
	}

	var auth map[string]string
	if err := json.Unmarshal(authData, &auth); err != nil || auth["OPENAI_API_KEY"] == "" {
		return DiagResult{
			Name:    "codex_files",
			Status:  StatusFail,
			Message: "auth.json이 유효한 자격증명 문서가 아님",
			Fix:     "codex 프로필을 다시 활성화",
		}
	}

	var cfg struct {
		ModelProviders map[string]struct {
			BaseURL string `toml:"base_url"`
		} `toml:"model_providers"`
	}
	if err := toml.Unmarshal(configData, &cfg); err != nil {
		return DiagResult{
			Name:    "codex_files",
			Status:  StatusFail,
			Message: "config.toml 파싱 실패",
			Fix:     "codex 프로필을 다시 활성화",
		}
	}

	return DiagResult{
		Name:    "codex_files",
		Status:  StatusOK,
		Message: "auth.json/config.toml 일관성 확인",
	}
}

// CheckOpencode는 공유 opencode 문서의 스키마를 확인한다.
// provider 섹션이 없는 문서는 sync가 실패하므로 FAIL이다.
func CheckOpencode(path string) DiagResult {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DiagResult{
			Name:    "opencode",
			Status:  StatusOK,
			Message: "opencode 문서 없음 — sync 시 기본 템플릿 생성",
		}
	}
	if err != nil {
		return DiagResult{
			Name:    "opencode",
			Status:  StatusFail,
			Message: fmt.Sprintf("opencode 문서 읽기 실패: %v", err),
		}
	}
	if !gjson.ValidBytes(data) {
		return DiagResult{
			Name:    "opencode",
			Status:  StatusWarn,
			Message: "opencode 문서가 유효한 JSON이 아님 — sync 시 기본 템플릿으로 대체",
		}
	}
	prov := gjson.GetBytes(data, "provider")
	if !prov.Exists() || !prov.IsObject() {
		return DiagResult{
			Name:    "opencode",
			Status:  StatusFail,
			Message: "opencode 문서에 provider 섹션 없음 — sync 불가",
			Fix:     "opencode가 생성한 문서인지 확인",
		}
	}
	return DiagResult{
		Name:    "opencode",
		Status:  StatusOK,
		Message: "opencode 문서 스키마 확인",
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, storePath, home, opencodePath string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, cmd)...)
	results = append(results, CheckStore(storePath))
	results = append(results, CheckCodexFiles(home))
	results = append(results, CheckOpencode(opencodePath))
	return results
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
