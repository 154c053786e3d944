package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "저장된 프로필 목록을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	profiles := a.manager().List()
	out := cmd.OutOrStdout()

	if len(profiles) == 0 {
		fmt.Fprintln(out, "저장된 프로필이 없습니다. 'aictx add'로 추가하세요.")
		return nil
	}

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, " \tID\tNAME\tTYPE\tKEY\tBASE URL")
	for _, p := range profiles {
		marker := " "
		if p.Active {
			marker = "*"
		}
		baseURL := p.BaseURL
		if baseURL == "" {
			baseURL = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			marker, shortID(p.ID), p.Name, p.Type, MaskKey(p.APIKey), baseURL)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("cli.list: %w", err)
	}
	return nil
}

// shortID는 uuid를 목록 출력용으로 앞 8자만 남긴다.
// 비-uuid id(테스트 픽스처 등)는 그대로 둔다.
func shortID(id string) string {
	if len(id) == 36 {
		return id[:8]
	}
	return id
}
