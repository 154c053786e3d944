package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/prompt"
	"github.com/hbjs97/aictx/internal/store"
)

func (a *App) newAddCmd() *cobra.Command {
	var (
		name    string
		typeTag string
		apiKey  string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "새 프로필을 추가한다",
		Long: `새 프로필을 추가한다. --name/--type/--key를 모두 지정하면 그대로 생성하고,
생략하면 대화형 폼으로 입력받는다. 새 프로필은 비활성 상태로 생성된다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, name, typeTag, apiKey, baseURL)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "프로필 이름")
	cmd.Flags().StringVar(&typeTag, "type", "", "제공자 종류 (claude, gemini, codex)")
	cmd.Flags().StringVar(&apiKey, "key", "", "API 키")
	cmd.Flags().StringVar(&baseURL, "url", "", "base URL 재정의 (선택)")
	return cmd
}

func (a *App) runAdd(cmd *cobra.Command, name, typeTag, apiKey, baseURL string) error {
	var (
		t   store.ProviderType
		err error
	)

	if name == "" || typeTag == "" || apiKey == "" {
		if a.Forms == nil {
			return fmt.Errorf("cli.add: --name/--type/--key를 모두 지정하세요")
		}
		defaults := &prompt.ProfileInput{Name: name, APIKey: apiKey, BaseURL: baseURL}
		if typeTag != "" {
			if defaults.Type, err = store.ParseType(typeTag); err != nil {
				return fmt.Errorf("cli.add: %w", err)
			}
		}
		input, err := a.Forms.RunProfileForm(defaults, false)
		if err != nil {
			return fmt.Errorf("cli.add: %w", err)
		}
		name, t, apiKey, baseURL = input.Name, input.Type, input.APIKey, input.BaseURL
	} else {
		if t, err = store.ParseType(typeTag); err != nil {
			return fmt.Errorf("cli.add: %w", err)
		}
	}

	p, err := a.manager().Add(name, t, apiKey, baseURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "프로필 추가됨: %s (%s, id %s)\n", p.Name, p.Type, shortID(p.ID))
	fmt.Fprintf(cmd.OutOrStdout(), "활성화: aictx use %s\n", shortID(p.ID))
	return nil
}
