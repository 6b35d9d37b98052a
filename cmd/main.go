package cmd

import (
	"github.com/spf13/cobra"
	"github.com/t-kuni/gencmake/cmd/initCommand"
	"github.com/t-kuni/gencmake/cmd/rewriteCommand"
	"github.com/t-kuni/gencmake/cmd/versionCommand"
	"github.com/t-kuni/gencmake/domain/service/backup"
	"github.com/t-kuni/gencmake/domain/service/configFindService"
	"github.com/t-kuni/gencmake/domain/service/rewrite"
	configRepo "github.com/t-kuni/gencmake/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/gencmake/infrastructure/repository/file"
	"github.com/t-kuni/gencmake/infrastructure/system/ksuid"
	"github.com/t-kuni/gencmake/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	backupSrv := backup.NewBackupService(fileRepository, timer.NewTimer(), ksuid.NewKsuidGenerator())
	rewriteSrv := rewrite.NewRewriteService(fileRepository, backupSrv)

	rewriteCmd := rewriteCommand.NewRewriteCommand(configFindSrv, configRepository, rewriteSrv)

	cmd := &cobra.Command{
		Use:   "gencmake",
		Short: "Point a copied CMakeCache.txt at the current directory",
		Long: `gencmake rewrites the absolute source path baked into CMakeCache.txt so the cache
can be reused from the current directory. Running it without a subcommand performs the rewrite and accepts the same flags.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := rewriteCommand.AddFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return rewriteCmd.Run(cmd.OutOrStdout(), flags())
	}

	cmd.AddCommand(rewriteCmd.CobraCommand)
	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
