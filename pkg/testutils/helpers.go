package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestDirs creates empty subdirectories under dir
func CreateTestDirs(t *testing.T, dir string, names ...string) {
	for _, name := range names {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}
}

// CreateProjectDir builds the standard browsing fixture: a directory
// holding one subdirectory named src and one file named readme.txt
func CreateProjectDir(t *testing.T) string {
	dir := t.TempDir()
	CreateTestDirs(t, dir, "src")
	CreateTestFilesWithContent(t, dir, map[string]string{"readme.txt": "hi"})
	return dir
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	// Simple ANSI escape sequence stripping
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
