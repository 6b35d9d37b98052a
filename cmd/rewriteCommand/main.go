package rewriteCommand

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/t-kuni/gencmake/domain/repository/config"
	"github.com/t-kuni/gencmake/domain/service/configFindService"
	"github.com/t-kuni/gencmake/domain/service/rewrite"
)

const SearchPathEnv = "GENCMAKE_SEARCH_PATH"

// Flags holds the rewrite flags. Once and Backup are nil unless given on the command line.
type Flags struct {
	SearchPath string
	CacheFile  string
	Once       *bool
	DryRun     bool
	Backup     *bool
}

type RewriteCommand struct {
	CobraCommand      *cobra.Command
	configFindService *configFindService.ConfigFindService
	configRepository  config.Repository
	rewriteService    *rewrite.RewriteService
}

func NewRewriteCommand(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	rewriteService *rewrite.RewriteService,
) *RewriteCommand {
	c := &RewriteCommand{
		configFindService: configFindService,
		configRepository:  configRepository,
		rewriteService:    rewriteService,
	}

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite the source path in CMakeCache.txt",
		Long: `Prepend a marker comment to CMakeCache.txt in the current directory and replace every
occurrence of the configured source path with the current directory.`,
		Args: cobra.NoArgs,
	}
	flags := AddFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.Run(cmd.OutOrStdout(), flags())
	}

	c.CobraCommand = cmd
	return c
}

// AddFlags registers the rewrite flags on cmd and returns a func that reads them after parsing.
func AddFlags(cmd *cobra.Command) func() Flags {
	var (
		searchPath string
		cacheFile  string
		once       bool
		dryRun     bool
		backup     bool
	)

	cmd.Flags().StringVarP(&searchPath, "search", "s", "", "Path to replace (overrides gencmake.yml and "+SearchPathEnv+")")
	cmd.Flags().StringVarP(&cacheFile, "file", "f", "", "Cache file relative to the current directory")
	cmd.Flags().BoolVar(&once, "once", false, "Skip the rewrite when the marker is already present")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the diff without writing")
	cmd.Flags().BoolVarP(&backup, "backup", "b", false, "Save the original file under .gencmake/history")

	return func() Flags {
		flags := Flags{
			SearchPath: searchPath,
			CacheFile:  cacheFile,
			DryRun:     dryRun,
		}
		if cmd.Flags().Changed("once") {
			flags.Once = &once
		}
		if cmd.Flags().Changed("backup") {
			flags.Backup = &backup
		}
		return flags
	}
}

func (c *RewriteCommand) Run(out io.Writer, flags Flags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	opts := rewrite.Options{
		CacheFile:  cfg.CacheFile,
		SearchPath: cfg.SearchPath,
		Marker:     cfg.Marker,
		Once:       cfg.Once,
		DryRun:     flags.DryRun,
		Backup:     cfg.Backup,
	}
	if flags.Once != nil {
		opts.Once = *flags.Once
	}
	if flags.Backup != nil {
		opts.Backup = *flags.Backup
	}
	if env := os.Getenv(SearchPathEnv); env != "" {
		opts.SearchPath = env
	}
	if flags.SearchPath != "" {
		opts.SearchPath = flags.SearchPath
	}
	if flags.CacheFile != "" {
		opts.CacheFile = flags.CacheFile
	}

	result, err := c.rewriteService.Rewrite(opts)
	if err != nil {
		if errors.Is(err, rewrite.ErrCacheWriteFailed) {
			fmt.Fprintf(out, "ExecTime: %d\n", result.ExecTimes)
			fmt.Fprintln(out, "Cannot generate the CMakeCache file")
		}
		return err
	}

	switch {
	case result.Skipped:
		fmt.Fprintf(out, "ExecTime: %d\n", result.ExecTimes)
		fmt.Fprintln(out, "gencmake only accepts 1 execution times")
	case opts.DryRun:
		printDiff(out, result.Before, result.After)
		fmt.Fprintf(out, "%d occurrence(s) of %s would be replaced in %s\n", result.Replaced, opts.SearchPath, result.Path)
	default:
		fmt.Fprintf(out, "ExecTime: %d\n", result.ExecTimes)
		fmt.Fprintf(out, "CMakeCache generated with success to path %s!\n", result.Path)
		if result.BackupDir != "" {
			fmt.Fprintf(out, "Backup saved to %s\n", result.BackupDir)
		}
	}

	return nil
}

func (c *RewriteCommand) loadConfig() (*config.Config, error) {
	configPath, err := c.configFindService.FindConfig()
	if err != nil {
		if errors.Is(err, configFindService.ErrConfigNotFound) {
			log.Debug("no gencmake.yml found, using defaults")
			return config.Default(), nil
		}
		return nil, err
	}

	log.WithField("path", configPath).Debug("using config file")
	return c.configRepository.Read(configPath)
}

func printDiff(out io.Writer, oldContent, newContent string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldContent, newContent, false)
	fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
}
