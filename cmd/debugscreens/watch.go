package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces the burst of events editors emit on save
const watchDebounce = 100 * time.Millisecond

// runWatch generates once, then regenerates whenever the config file, .env
// or a theme stylesheet changes, until interrupted.
func runWatch(cmd *cobra.Command, configPath string, cfg generateConfig) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	status := statusWriter(cfg)
	if _, err := generateOnce(cfg, cmd.OutOrStdout(), status); err != nil {
		fmt.Fprintf(status, "Error: %v\n", err)
	}

	if err := addWatchDirs(watcher, configPath, cfg.Themes); err != nil {
		return err
	}
	fmt.Fprintln(status, "Watching for changes (Ctrl+C to stop)")

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isRelevant(event, configPath, cfg) {
				pending = time.After(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(status, "Watch error: %v\n", err)

		case <-pending:
			pending = nil

			// Reload from scratch so removed keys do not linger
			k = koanf.New(".")
			if err := loadConfig(cmd); err != nil {
				fmt.Fprintf(status, "Error: %v\n", err)
				continue
			}
			next, err := buildGenerateConfig(cmd, configPath)
			if err != nil {
				fmt.Fprintf(status, "Error: %v\n", err)
				continue
			}
			cfg = next
			status = statusWriter(cfg)

			if _, err := generateOnce(cfg, cmd.OutOrStdout(), status); err != nil {
				fmt.Fprintf(status, "Error: %v\n", err)
				continue
			}
			if err := addWatchDirs(watcher, configPath, cfg.Themes); err != nil {
				fmt.Fprintf(status, "Error: %v\n", err)
			}
		}
	}
}

// addWatchDirs watches the directories holding the config file and the
// theme files. Directories are watched rather than files because editors
// often replace a file on save.
func addWatchDirs(watcher *fsnotify.Watcher, configPath string, themes []string) error {
	dirs := map[string]bool{
		filepath.Dir(configPath): true,
		".":                      true,
	}
	for _, pattern := range themes {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			dirs[filepath.Dir(m)] = true
		}
	}

	watched := make(map[string]bool)
	for _, w := range watcher.WatchList() {
		watched[filepath.Clean(w)] = true
	}

	for dir := range dirs {
		dir = filepath.Clean(dir)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return nil
}

// isRelevant reports whether event touches an input of the generation.
// The output file itself never triggers a rebuild.
func isRelevant(event fsnotify.Event, configPath string, cfg generateConfig) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	name := filepath.Clean(event.Name)
	if cfg.Output != "" && name == filepath.Clean(cfg.Output) {
		return false
	}
	if name == filepath.Clean(configPath) || name == ".env" {
		return true
	}

	for _, pattern := range cfg.Themes {
		if ok, _ := doublestar.PathMatch(filepath.Clean(pattern), name); ok {
			return true
		}
	}
	return false
}
