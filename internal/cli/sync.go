package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/opencode"
	"github.com/hbjs97/aictx/internal/store"
)

func (a *App) newSyncCmd() *cobra.Command {
	var (
		claudeArg string
		geminiArg string
		codexArg  string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "선택된 프로필을 공유 opencode 문서에 병합한다",
		Long: `프로필의 자격증명을 opencode.json의 provider 섹션에 병합한다.
슬롯 플래그를 생략하면 타입별 active 프로필이 사용된다. 문서의 다른 필드는
건드리지 않으며, base URL 재정의가 없는 프로필은 기존 baseURL을 유지한다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSync(cmd, claudeArg, geminiArg, codexArg)
		},
	}
	cmd.Flags().StringVar(&claudeArg, "claude", "", "anthropic 슬롯에 병합할 프로필 (id 또는 이름)")
	cmd.Flags().StringVar(&geminiArg, "gemini", "", "google 슬롯에 병합할 프로필 (id 또는 이름)")
	cmd.Flags().StringVar(&codexArg, "codex", "", "openai 슬롯에 병합할 프로필 (id 또는 이름)")
	return cmd
}

func (a *App) runSync(cmd *cobra.Command, claudeArg, geminiArg, codexArg string) error {
	mgr := a.manager()
	sel := mgr.ActiveSelection()

	st := store.Load(a.StorePath)
	slots := []struct {
		arg string
		id  *string
	}{
		{claudeArg, &sel.ClaudeID},
		{geminiArg, &sel.GeminiID},
		{codexArg, &sel.CodexID},
	}
	for _, s := range slots {
		if s.arg == "" {
			continue
		}
		p, err := resolveProfile(st, s.arg)
		if err != nil {
			return err
		}
		*s.id = p.ID
	}

	if sel == (opencode.Selection{}) {
		fmt.Fprintln(cmd.OutOrStdout(), "병합할 프로필이 없습니다. 프로필을 활성화하거나 슬롯 플래그를 지정하세요.")
		return nil
	}

	if err := mgr.Sync(sel); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "opencode 문서 병합 완료: %s\n", a.OpencodePath)
	if a.Verbose {
		report := []struct {
			slot string
			id   string
		}{
			{"anthropic", sel.ClaudeID},
			{"google", sel.GeminiID},
			{"openai", sel.CodexID},
		}
		for _, r := range report {
			if r.id != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s <- %s\n", r.slot, shortID(r.id))
			}
		}
	}
	return nil
}
