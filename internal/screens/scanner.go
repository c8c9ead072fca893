package screens

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/debugscreens"
)

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// No .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a theme file is gitignored.
// Only relative paths are checked; absolute paths (like /tmp/...) are outside
// the project and never match the project gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ScanThemeFiles expands glob patterns (with ** support) into theme files,
// in pattern order, without duplicates, directories or gitignored files.
func ScanThemeFiles(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// LoadThemeFiles reads breakpoints from every theme file matching patterns.
// Later files override and extend earlier ones, the way stacked @theme
// blocks do. Unreadable files become warnings. Progress lines go to verbose
// when it is non-nil.
func LoadThemeFiles(patterns []string, verbose io.Writer) (*LoadResult, error) {
	files, stats, err := ScanThemeFiles(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &LoadResult{Stats: stats, Screens: debugscreens.Screens{}}
	if verbose != nil {
		fmt.Fprintf(verbose, "Found %d theme files (%d gitignored)\n", len(files), stats.FilesSkipped)
	}

	for _, file := range files {
		if verbose != nil {
			fmt.Fprintf(verbose, "Parsing %s\n", file)
		}
		screens, err := parseFile(file, result.Screens)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		result.Screens = screens
		result.Files = append(result.Files, file)
	}

	return result, nil
}
