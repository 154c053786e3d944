package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/store"
)

func (a *App) newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <id|name>",
		Short: "프로필을 삭제한다",
		Long: `프로필을 삭제한다. active인 프로필을 삭제하면 해당 타입의 외부 상태
(환경변수 또는 codex 파일)도 함께 정리된다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRemove(cmd, args[0], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "확인 없이 삭제")
	return cmd
}

func (a *App) runRemove(cmd *cobra.Command, arg string, force bool) error {
	st := store.Load(a.StorePath)
	p, err := resolveProfile(st, arg)
	if err != nil {
		return err
	}

	if !force && a.Forms != nil {
		msg := fmt.Sprintf("프로필 %q(%s)을 삭제할까요?", p.Name, p.Type)
		if p.Active {
			msg = fmt.Sprintf("프로필 %q(%s)은 active입니다. 외부 상태를 정리하고 삭제할까요?", p.Name, p.Type)
		}
		ok, err := a.Forms.RunConfirm(msg)
		if err != nil {
			return fmt.Errorf("cli.remove: %w", err)
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "취소됨")
			return nil
		}
	}

	if err := a.manager().Delete(p.ID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "프로필 삭제됨: %s (id %s)\n", p.Name, shortID(p.ID))
	return nil
}
