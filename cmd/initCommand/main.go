package initCommand

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/t-kuni/gencmake/domain/repository/config"
	"github.com/t-kuni/gencmake/domain/repository/file"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gencmake.yml in the current directory",
		Long:  `Initialize gencmake by creating a gencmake.yml configuration file with default values in the current directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "gencmake.yml")
			if fileRepository.Exists(configPath) {
				return fmt.Errorf("gencmake.yml already exists in the current directory")
			}

			err = configRepository.Write(configPath, config.Default())
			if err != nil {
				return err
			}

			err = addToGitignore(fileRepository, filepath.Join(currentDir, ".gitignore"))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Initialized gencmake. Created gencmake.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}

func addToGitignore(fileRepository file.Repository, gitignorePath string) error {
	const entry = "/.gencmake"

	var content string
	if fileRepository.Exists(gitignorePath) {
		data, err := fileRepository.Read(gitignorePath)
		if err != nil {
			return err
		}
		content = string(data)
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	return fileRepository.Write(gitignorePath, []byte(content))
}
