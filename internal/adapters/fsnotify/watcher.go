// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It recursively watches a repository
// directory, filters paths using the same ignore-pattern convention as the
// Directory Driver, and debounces rapid events (editors often trigger
// multiple writes per save).
package fsnotify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
)

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	done     chan struct{}
	stopped  bool
	mu       sync.Mutex
	patterns []string
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file system watcher. ignorePatterns filters both
// directories added to the watch and events reported to callers, using the
// same glob convention as the Directory Driver's ignore_patterns (§6); pass
// nil to use config.DefaultIgnorePatterns.
func NewWatcher(ignorePatterns []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if ignorePatterns == nil {
		ignorePatterns = config.DefaultIgnorePatterns
	}
	return &Watcher{
		fw:       fw,
		done:     make(chan struct{}),
		patterns: ignorePatterns,
	}, nil
}

// Watch starts monitoring projectPath recursively.
// onChange is called with the absolute path of each changed file.
func (w *Watcher) Watch(projectPath string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return err
	}

	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == absPath {
				return err // a missing or unreadable root is an error
			}
			return nil // skip inaccessible paths below the root
		}
		if info.IsDir() {
			if path != absPath && w.matchesIgnorePattern(info.Name()) {
				return filepath.SkipDir
			}
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	debounce := make(map[string]time.Time)
	var dmu sync.Mutex
	const debounceInterval = 50 * time.Millisecond

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if !w.matchesIgnorePattern(info.Name()) {
							w.fw.Add(path)
						}
					}
				}

				if w.shouldIgnorePath(path) {
					continue
				}

				dmu.Lock()
				last, exists := debounce[path]
				now := time.Now()
				if exists && now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				debounce[path] = now
				dmu.Unlock()

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					onChange(path)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) matchesIgnorePattern(segment string) bool {
	for _, pattern := range w.patterns {
		if matched, _ := doublestar.Match(pattern, segment); matched {
			return true
		}
	}
	return false
}

// shouldIgnorePath reports whether path should not trigger onChange: any
// path segment matching an ignore pattern.
func (w *Watcher) shouldIgnorePath(path string) bool {
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if w.matchesIgnorePattern(part) {
			return true
		}
	}
	return false
}
