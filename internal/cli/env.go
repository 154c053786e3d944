package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/shell"
	"github.com/hbjs97/aictx/internal/store"
)

func (a *App) newEnvCmd() *cobra.Command {
	var (
		shellType string
		unsetAll  bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "active 프로필의 shell export 명령을 출력한다",
		Long: `active인 환경변수 기반 프로필(claude, gemini)의 export 명령을 출력한다.
영구 환경변수를 지원하지 않는 플랫폼에서 eval "$(aictx env)" 형태로 사용한다.
codex는 파일 기반이므로 포함되지 않는다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.Load(a.StorePath)
			if unsetAll {
				fmt.Fprint(cmd.OutOrStdout(), shell.Unsets(shellType))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), shell.Exports(st.List(), shellType))
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&unsetAll, "unset", false, "모든 제공자 변수의 unset 명령 출력")
	return cmd
}
