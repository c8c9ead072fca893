package screens

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/debugscreens"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanThemeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.css"), "")
	writeFile(t, filepath.Join(dir, "theme", "base.css"), "")
	writeFile(t, filepath.Join(dir, "theme", "notes.txt"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.css"), 0755))

	files, stats, err := ScanThemeFiles([]string{
		filepath.Join(dir, "*.css"),
		filepath.Join(dir, "**", "*.css"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "app.css"),
		filepath.Join(dir, "theme", "base.css"),
	}, files)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 0, stats.FilesSkipped)
}

func TestScanThemeFiles_BadPattern(t *testing.T) {
	_, _, err := ScanThemeFiles([]string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glob pattern")
}

func TestScanThemeFiles_GitIgnore(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	gitIgnoreOnce = sync.Once{}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
		gitIgnoreOnce = sync.Once{}
	})

	writeFile(t, ".gitignore", "dist/\n")
	writeFile(t, filepath.Join("src", "app.css"), "")
	writeFile(t, filepath.Join("dist", "app.css"), "")

	files, stats, err := ScanThemeFiles([]string{"**/*.css"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join("src", "app.css")}, files)
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestLoadThemeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.css"), `@theme { --breakpoint-sm: 40rem; --breakpoint-md: 48rem; }`)
	writeFile(t, filepath.Join(dir, "b.css"), `@theme { --breakpoint-md: 50rem; --breakpoint-xl: 80rem; }`)

	var log bytes.Buffer
	result, err := LoadThemeFiles([]string{
		filepath.Join(dir, "a.css"),
		filepath.Join(dir, "b.css"),
	}, &log)
	require.NoError(t, err)

	assert.Equal(t, debugscreens.Screens{
		{Name: "sm", Size: "40rem"},
		{Name: "md", Size: "50rem"},
		{Name: "xl", Size: "80rem"},
	}, result.Screens)
	assert.Len(t, result.Files, 2)
	assert.Empty(t, result.Warnings)
	assert.Contains(t, log.String(), "Found 2 theme files")
}

func TestLoadThemeFiles_NoMatches(t *testing.T) {
	result, err := LoadThemeFiles([]string{filepath.Join(t.TempDir(), "*.css")}, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Screens)
	assert.Empty(t, result.Files)
}
