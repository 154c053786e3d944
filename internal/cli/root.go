package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbjs97/aictx/internal/cmdexec"
	"github.com/hbjs97/aictx/internal/envreg"
	"github.com/hbjs97/aictx/internal/manager"
	"github.com/hbjs97/aictx/internal/prompt"
)

// App은 CLI 전역 의존성을 보관한다. 테스트에서는 fake를 주입한다.
type App struct {
	Commander    cmdexec.Commander
	Env          envreg.Writer
	Forms        prompt.FormRunner
	StorePath    string
	OpencodePath string
	Home         string
	Verbose      bool
}

// NewApp은 프로덕션 기본값으로 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander:    &cmdexec.RealCommander{},
		Env:          envreg.NewRegistryWriter(),
		Forms:        &prompt.HuhFormRunner{},
		StorePath:    filepath.Join(configDir(), "aictx", "configs.json"),
		OpencodePath: filepath.Join(configDir(), "opencode", "opencode.json"),
		Home:         homeDir(),
	}
}

// NewRootCmd는 aictx CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aictx",
		Short:        "AI CLI 자격증명 프로필 매니저",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.StorePath, "store", a.StorePath, "프로필 스토어 파일 경로")
	cmd.PersistentFlags().StringVar(&a.OpencodePath, "opencode", a.OpencodePath, "공유 opencode.json 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newListCmd(),
		a.newAddCmd(),
		a.newEditCmd(),
		a.newRemoveCmd(),
		a.newUseCmd(),
		a.newOffCmd(),
		a.newSyncCmd(),
		a.newEnvCmd(),
		a.newDoctorCmd(),
	)
	return cmd
}

func (a *App) manager() *manager.Manager {
	return manager.New(a.StorePath, a.OpencodePath, a.Env, a.Home)
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 설정 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return dir
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
