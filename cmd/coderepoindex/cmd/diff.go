package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/adapters/bbolt"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/version"
)

var diffCmd = &cobra.Command{
	Use:   "diff <repo-id> <version-a> <version-b>",
	Short: "Show the set-level diff between two saved snapshots",
	Long:  "Loads two snapshots for a repository and reports added, modified, deleted, and unchanged paths.",
	Args:  cobra.ExactArgs(3),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	repoID, versionA, versionB := args[0], args[1], args[2]

	dbPath := filepath.Join(root, snapshotDBPath)
	store, err := bbolt.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer store.Close()

	snapA, err := store.Load(repoID, versionA)
	if err != nil {
		return fmt.Errorf("load %s: %w", versionA, err)
	}
	if snapA == nil {
		return fmt.Errorf("no snapshot %s/%s", repoID, versionA)
	}

	snapB, err := store.Load(repoID, versionB)
	if err != nil {
		return fmt.Errorf("load %s: %w", versionB, err)
	}
	if snapB == nil {
		return fmt.Errorf("no snapshot %s/%s", repoID, versionB)
	}

	plan := version.Diff(snapA, snapB.Files)
	fmt.Printf("%s -> %s\n", versionA, versionB)
	fmt.Printf("  added:     %d\n", len(plan.Added))
	fmt.Printf("  modified:  %d\n", len(plan.Modified))
	fmt.Printf("  deleted:   %d\n", len(plan.Deleted))
	fmt.Printf("  unchanged: %d\n", len(plan.Unchanged))
	for path := range plan.Added {
		fmt.Printf("  + %s\n", path)
	}
	for path := range plan.Modified {
		fmt.Printf("  ~ %s\n", path)
	}
	for path := range plan.Deleted {
		fmt.Printf("  - %s\n", path)
	}
	return nil
}
