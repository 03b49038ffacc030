package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor write bursts into one regeneration.
const debounceDelay = 200 * time.Millisecond

// runWatch regenerates whenever a watched package directory or schema file
// changes. The initial generation runs immediately; later failures are
// logged and watching continues.
func runWatch(cfg *config) error {
	if err := runGen(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "lens-generator:", err)
	}

	_, paths, err := loadDecls(cfg)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	seen := make(map[string]bool)
	for _, p := range paths {
		if seen[p] {
			continue
		}

		seen[p] = true

		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	var debounce *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}

			// Ignore our own output.
			if isGeneratedPath(event.Name) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}

			debounce = time.AfterFunc(debounceDelay, func() {
				if err := runGen(cfg); err != nil {
					fmt.Fprintln(os.Stderr, "lens-generator:", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			fmt.Fprintln(os.Stderr, "lens-generator: watch:", err)
		}
	}
}

func isGeneratedPath(path string) bool {
	return strings.HasSuffix(path, "_lenses.go")
}
