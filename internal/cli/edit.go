package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/prompt"
	"github.com/hbjs97/aictx/internal/store"
)

func (a *App) newEditCmd() *cobra.Command {
	var (
		name    string
		apiKey  string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "edit <id|name>",
		Short: "프로필의 이름/키/URL을 수정한다",
		Long: `프로필을 수정한다. 제공자 종류는 생성 후 변경할 수 없다.
플래그 없이 실행하면 기존 값이 채워진 대화형 폼을 띄운다.
active인 프로필을 수정하면 외부 상태도 수정된 값으로 다시 적용된다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit(cmd, args[0], name, apiKey, baseURL)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "새 프로필 이름")
	cmd.Flags().StringVar(&apiKey, "key", "", "새 API 키")
	cmd.Flags().StringVar(&baseURL, "url", "", "새 base URL (빈 값으로 재정의 해제)")
	return cmd
}

func (a *App) runEdit(cmd *cobra.Command, arg, name, apiKey, baseURL string) error {
	st := store.Load(a.StorePath)
	p, err := resolveProfile(st, arg)
	if err != nil {
		return err
	}

	flagged := cmd.Flags().Changed("name") || cmd.Flags().Changed("key") || cmd.Flags().Changed("url")
	if !flagged {
		if a.Forms == nil {
			return fmt.Errorf("cli.edit: 수정할 값을 플래그로 지정하세요")
		}
		input, err := a.Forms.RunProfileForm(&prompt.ProfileInput{
			Name:    p.Name,
			Type:    p.Type,
			APIKey:  p.APIKey,
			BaseURL: p.BaseURL,
		}, true)
		if err != nil {
			return fmt.Errorf("cli.edit: %w", err)
		}
		name, apiKey, baseURL = input.Name, input.APIKey, input.BaseURL
	} else {
		// 지정하지 않은 필드는 기존 값을 유지한다.
		if !cmd.Flags().Changed("name") {
			name = p.Name
		}
		if !cmd.Flags().Changed("key") {
			apiKey = p.APIKey
		}
		if !cmd.Flags().Changed("url") {
			baseURL = p.BaseURL
		}
	}

	if err := a.manager().Update(p.ID, name, apiKey, baseURL); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "프로필 수정됨: %s (id %s)\n", name, shortID(p.ID))
	if p.Active {
		fmt.Fprintln(cmd.OutOrStdout(), "active 프로필이므로 외부 상태를 다시 적용했습니다.")
	}
	return nil
}
