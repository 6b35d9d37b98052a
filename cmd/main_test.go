package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/gencmake/testUtil"
)

func TestRootCommand(t *testing.T) {
	t.Run("running without a subcommand rewrites CMakeCache.txt", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()
		t.Setenv("GENCMAKE_SEARCH_PATH", "")

		space.WriteFile("CMakeCache.txt", []byte("SOURCE_DIR:STRING=/home/el-rafa/VSCode/Rhythin/build"))

		var out bytes.Buffer
		root := NewRootCommand().CobraCommand
		root.SetOut(&out)
		root.SetArgs([]string{})

		err := root.Execute()
		assert.NoError(t, err)

		wd, _ := os.Getwd()
		space.AssertFile("CMakeCache.txt", func(actual []byte) {
			assert.Equal(t, "# Generated with gencmake.py\nSOURCE_DIR:STRING="+wd+"/build", string(actual))
		})
		assert.Contains(t, out.String(), "ExecTime: 1")
	})

	t.Run("version prints the version line", func(t *testing.T) {
		var out bytes.Buffer
		root := NewRootCommand().CobraCommand
		root.SetOut(&out)
		root.SetArgs([]string{"version"})

		assert.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "gencmake version ")
	})

	t.Run("the bare command accepts the rewrite flags", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()
		t.Setenv("GENCMAKE_SEARCH_PATH", "")

		content := "# Generated with gencmake.py\nA=1\n"
		space.WriteFile("CMakeCache.txt", []byte(content))

		var out bytes.Buffer
		root := NewRootCommand().CobraCommand
		root.SetOut(&out)
		root.SetArgs([]string{"--once"})

		assert.NoError(t, root.Execute())
		assert.Equal(t, "ExecTime: 1\ngencmake only accepts 1 execution times\n", out.String())
		space.AssertFile("CMakeCache.txt", func(actual []byte) {
			assert.Equal(t, content, string(actual))
		})
	})
}
