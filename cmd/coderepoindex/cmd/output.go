package cmd

import (
	"fmt"
	"time"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

func printSummary(result *model.DirectoryParseResult) {
	fmt.Printf("indexed %d file(s), %d snippet(s), %d skipped, %d error(s) in %s\n",
		result.ProcessedFiles, len(result.Snippets), result.SkippedFiles, len(result.Errors), result.Elapsed)
	if result.Cancelled {
		fmt.Println("run cancelled before completion; results are partial")
	}
	for path, msg := range result.Errors {
		fmt.Printf("  %s: %s\n", path, msg)
	}
}

// nextVersionID generates a version identifier when the caller doesn't
// supply one, using the current time so successive runs sort chronologically.
func nextVersionID() string {
	return time.Now().UTC().Format("20060102T150405.000000000Z")
}
