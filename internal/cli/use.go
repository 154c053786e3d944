package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/store"
)

func (a *App) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id|name>",
		Short: "프로필을 활성화한다",
		Long: `프로필을 활성화하고 자격증명을 외부 상태로 전파한다.
같은 타입의 다른 프로필은 비활성화되고 다른 타입은 영향받지 않는다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUse(cmd, args[0])
		},
	}
}

func (a *App) runUse(cmd *cobra.Command, arg string) error {
	st := store.Load(a.StorePath)
	p, err := resolveProfile(st, arg)
	if err != nil {
		return err
	}

	if err := a.manager().Activate(p.ID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "프로필 활성화됨: %s (%s)\n", p.Name, p.Type)
	return nil
}

func (a *App) newOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off <id|name>",
		Short: "프로필을 비활성화한다",
		Long: `active인 프로필을 비활성화하고 외부 상태를 정리한다.
active가 아닌 프로필에는 아무 일도 하지 않는다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOff(cmd, args[0])
		},
	}
}

func (a *App) runOff(cmd *cobra.Command, arg string) error {
	st := store.Load(a.StorePath)
	p, err := resolveProfile(st, arg)
	if err != nil {
		return err
	}

	if err := a.manager().Deactivate(p.ID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "프로필 비활성화됨: %s (%s)\n", p.Name, p.Type)
	return nil
}
