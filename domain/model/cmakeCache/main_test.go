package cmakeCache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheFile(t *testing.T) {
	t.Run("Annotate prepends the marker line", func(t *testing.T) {
		c := NewCacheFile("/opt/project/CMakeCache.txt", []byte("A:STRING=1\n"))

		actual := c.Annotate("# marker")

		assert.Equal(t, "# marker\nA:STRING=1\n", actual.Content)
		assert.Equal(t, c.Path, actual.Path)
	})

	t.Run("Annotate on empty content yields only the marker line", func(t *testing.T) {
		actual := NewCacheFile("x", nil).Annotate("# marker")

		assert.Equal(t, "# marker\n", actual.Content)
	})

	t.Run("ReplacePath replaces every occurrence", func(t *testing.T) {
		c := NewCacheFile("x", []byte("/home/a/src\n/home/a/build\nX=/home/a"))

		actual, count := c.ReplacePath("/home/a", "/opt/p")

		assert.Equal(t, 3, count)
		assert.Equal(t, "/opt/p/src\n/opt/p/build\nX=/opt/p", actual.Content)
		assert.NotContains(t, actual.Content, "/home/a")
	})

	t.Run("ReplacePath without a match leaves content unchanged", func(t *testing.T) {
		c := NewCacheFile("x", []byte("A:STRING=1"))

		actual, count := c.ReplacePath("/home/a", "/opt/p")

		assert.Equal(t, 0, count)
		assert.Equal(t, "A:STRING=1", actual.Content)
	})

	t.Run("ReplacePath ignores an empty search string", func(t *testing.T) {
		c := NewCacheFile("x", []byte("abc"))

		actual, count := c.ReplacePath("", "/opt/p")

		assert.Equal(t, 0, count)
		assert.Equal(t, "abc", actual.Content)
	})

	t.Run("IsAnnotated", func(t *testing.T) {
		assert.True(t, NewCacheFile("x", []byte("# marker\nA=1")).IsAnnotated("# marker"))
		assert.True(t, NewCacheFile("x", []byte("# marker")).IsAnnotated("# marker"))
		assert.False(t, NewCacheFile("x", []byte("A=1\n# marker\n")).IsAnnotated("# marker"))
		assert.False(t, NewCacheFile("x", []byte("# marker2\n")).IsAnnotated("# marker"))
	})

	t.Run("Annotate keeps CRLF line endings", func(t *testing.T) {
		actual := NewCacheFile("x", []byte("A=1\r\nB=2\r\n")).Annotate("# marker")

		assert.Equal(t, "# marker\r\nA=1\r\nB=2\r\n", actual.Content)
		assert.True(t, actual.IsAnnotated("# marker"))
	})

	t.Run("LineEnding", func(t *testing.T) {
		assert.Equal(t, "\r\n", NewCacheFile("x", []byte("A=1\r\n")).LineEnding())
		assert.Equal(t, "\n", NewCacheFile("x", []byte("A=1\nB=2\r\n")).LineEnding())
		assert.Equal(t, "\n", NewCacheFile("x", []byte("A=1")).LineEnding())
		assert.Equal(t, "\n", NewCacheFile("x", nil).LineEnding())
	})
}
