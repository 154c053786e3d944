package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/doctor"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "aictx 환경을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	results := doctor.RunAll(cmd.Context(), a.Commander, a.StorePath, a.Home, a.OpencodePath)
	out := cmd.OutOrStdout()

	failed := 0
	for _, r := range results {
		fmt.Fprintf(out, "[%s] %-12s %s\n", r.Status, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(out, "       %s\n", r.Fix)
		}
		if r.Status == doctor.StatusFail {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("cli.doctor: 진단 실패 %d건", failed)
	}
	return nil
}
