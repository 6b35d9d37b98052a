//go:build darwin

package path

import "path/filepath"

func BeforeWrite(path string) string {
	return path
}

// AfterGetAbsPath resolves /var/folders/... to /private/var/folders/... so both spellings compare equal.
func AfterGetAbsPath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
