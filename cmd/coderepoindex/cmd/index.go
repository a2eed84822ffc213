package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
)

var (
	incrementalFlag bool
	repositoryIDFlag string
	versionIDFlag    string
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Walk a repository and extract snippets",
	Long:  "Runs the Directory Driver over a repository, extracting code snippets via tree-sitter and chunking text/config/documentation files.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&incrementalFlag, "incremental", false, "only process files changed since the repository's last snapshot")
	indexCmd.Flags().StringVar(&repositoryIDFlag, "repo-id", "", "repository identifier for snapshot storage (defaults to the root directory name)")
	indexCmd.Flags().StringVar(&versionIDFlag, "version-id", "", "version identifier to save this run's snapshot under (defaults to a timestamp)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	root := resolveRoot(args)

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	driver, store, err := buildDriver(root, loaded, incrementalFlag)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	if !incrementalFlag {
		result := driver.Run(context.Background(), root, loaded.Directory)
		printSummary(result)
		return nil
	}

	repoID := repositoryIDFlag
	if repoID == "" {
		repoID = filepath.Base(root)
	}
	versionID := versionIDFlag
	if versionID == "" {
		versionID = nextVersionID()
	}

	result, err := driver.RunIncremental(context.Background(), root, loaded.Directory, repoID, versionID)
	if err != nil {
		return fmt.Errorf("incremental index: %w", err)
	}
	printSummary(result)
	if len(result.DeletedPaths) > 0 {
		fmt.Printf("deleted: %d path(s)\n", len(result.DeletedPaths))
	}
	return nil
}

func resolveRoot(args []string) string {
	root := projectRoot()
	if len(args) == 0 {
		return root
	}
	if filepath.IsAbs(args[0]) {
		return args[0]
	}
	return filepath.Join(root, args[0])
}
