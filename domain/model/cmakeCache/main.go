package cmakeCache

import "strings"

type CacheFile struct {
	Path    string
	Content string
}

func NewCacheFile(path string, content []byte) CacheFile {
	return CacheFile{
		Path:    path,
		Content: string(content),
	}
}

// LineEnding returns "\r\n" when the first line of the content ends with CRLF, otherwise "\n".
func (c CacheFile) LineEnding() string {
	i := strings.IndexByte(c.Content, '\n')
	if i > 0 && c.Content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// Annotate prepends the marker as its own line, using the content's line ending.
func (c CacheFile) Annotate(marker string) CacheFile {
	return CacheFile{
		Path:    c.Path,
		Content: marker + c.LineEnding() + c.Content,
	}
}

// ReplacePath replaces every literal occurrence of search and returns the number of replacements.
func (c CacheFile) ReplacePath(search, replacement string) (CacheFile, int) {
	if search == "" {
		return c, 0
	}

	count := strings.Count(c.Content, search)
	if count == 0 {
		return c, 0
	}

	return CacheFile{
		Path:    c.Path,
		Content: strings.ReplaceAll(c.Content, search, replacement),
	}, count
}

func (c CacheFile) IsAnnotated(marker string) bool {
	return c.Content == marker || strings.HasPrefix(c.Content, marker+c.LineEnding())
}

func (c CacheFile) Bytes() []byte {
	return []byte(c.Content)
}
