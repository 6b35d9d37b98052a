//go:build windows

package path

import "strings"

// BeforeWrite converts separators to forward slashes, the form CMake stores in its cache.
func BeforeWrite(path string) string {
	return strings.ReplaceAll(path, `\`, `/`)
}

func AfterGetAbsPath(path string) (string, error) {
	return path, nil
}
