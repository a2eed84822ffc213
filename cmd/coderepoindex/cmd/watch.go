package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/adapters/fsnotify"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a repository and re-index incrementally on change",
	Long:  "Runs an initial incremental index, then watches the tree and re-runs the Directory Driver's incremental mode whenever a file changes, debounced across bursts of events.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

// watchDebounce coalesces the many onChange calls fsnotify.Watcher fires for
// a single edit (write + rename + create can all fire within milliseconds)
// into one re-index.
const watchDebounce = 300 * time.Millisecond

func init() {
	watchCmd.Flags().StringVar(&repositoryIDFlag, "repo-id", "", "repository identifier for snapshot storage (defaults to the root directory name)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := resolveRoot(args)

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	driver, store, err := buildDriver(root, loaded, true)
	if err != nil {
		return err
	}
	defer store.Close()

	repoID := repositoryIDFlag
	if repoID == "" {
		repoID = filepath.Base(root)
	}

	reindex := func() {
		result, err := driver.RunIncremental(context.Background(), root, loaded.Directory, repoID, nextVersionID())
		if err != nil {
			fmt.Fprintf(os.Stderr, "reindex: %v\n", err)
			return
		}
		printSummary(result)
	}

	fmt.Printf("watching %s (repository %s)\n", root, repoID)
	reindex()

	watcher, err := fsnotify.NewWatcher(loaded.Directory.IgnorePatterns)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	var mu sync.Mutex
	var timer *time.Timer
	onChange := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, reindex)
	}

	if err := watcher.Watch(root, onChange); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("shutting down")
	return nil
}
