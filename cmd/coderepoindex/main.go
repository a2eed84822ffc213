// coderepoindex walks a repository, extracts code snippets and text chunks,
// and persists version snapshots for incremental re-indexing.
package main

import (
	"fmt"
	"os"

	"github.com/XingYu-Zhong/CodeRepoIndex/cmd/coderepoindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
