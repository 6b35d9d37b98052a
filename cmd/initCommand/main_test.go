package initCommand

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gencmake/domain/repository/file"
	"github.com/t-kuni/gencmake/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/gencmake/infrastructure/repository/file"
	"github.com/t-kuni/gencmake/testUtil"
	"go.uber.org/mock/gomock"
)

func TestInitCommand(t *testing.T) {
	t.Run("gencmake.yml is created and .gitignore updated", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile(".gitignore", []byte("/build"))

		realRepo := fileRepo.NewFileRepository()
		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Getwd().Return(space.Dir, nil).Times(1)
		mockFileRepo.EXPECT().Exists(gomock.Any()).DoAndReturn(realRepo.Exists).AnyTimes()
		mockFileRepo.EXPECT().Read(gomock.Any()).DoAndReturn(realRepo.Read).AnyTimes()
		mockFileRepo.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(realRepo.Write).AnyTimes()

		initCmd := NewInitCommand(config.NewConfigRepository(), mockFileRepo)

		cmd := &cobra.Command{}
		cmd.AddCommand(initCmd.CobraCommand)
		cmd.SetArgs([]string{"init"})

		err := cmd.Execute()
		assert.NoError(t, err)

		space.AssertFile("gencmake.yml", func(actual []byte) {
			expect := `
search-path: /home/el-rafa/VSCode/Rhythin
cache-file: CMakeCache.txt
marker: "# Generated with gencmake.py"
once: false
backup: false
`
			assert.YAMLEq(t, expect, string(actual))
		})

		space.AssertFile(".gitignore", func(actual []byte) {
			assert.Equal(t, "/build\n/.gencmake\n", string(actual))
		})
	})

	t.Run("an existing gencmake.yml is not overwritten", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("gencmake.yml", []byte("once: true\n"))

		mockFileRepo := file.NewMockRepository(mockCtrl)
		mockFileRepo.EXPECT().Getwd().Return(space.Dir, nil).Times(1)
		mockFileRepo.EXPECT().Exists(gomock.Any()).Return(true).Times(1)

		initCmd := NewInitCommand(config.NewConfigRepository(), mockFileRepo)

		cmd := &cobra.Command{}
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		cmd.AddCommand(initCmd.CobraCommand)
		cmd.SetArgs([]string{"init"})

		err := cmd.Execute()
		assert.Error(t, err)

		space.AssertFile("gencmake.yml", func(actual []byte) {
			assert.Equal(t, "once: true\n", string(actual))
		})
	})
}
