package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/adapters/bbolt"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/adapters/treesitter"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/directory"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/version"
)

// snapshotDBPath is where a repository's version snapshots live, relative
// to the repository root, mirroring the teacher's convention of a
// dotdir-scoped state file alongside the project it indexes.
const snapshotDBPath = ".coderepoindex/snapshots.db"

// toPortsConfig narrows config.ParserConfig to the smaller ports.ParserConfig
// contract the Parser interface actually needs.
func toPortsConfig(pc config.ParserConfig) ports.ParserConfig {
	return ports.ParserConfig{
		MaxFileSize:                 pc.MaxFileSize,
		EncodingConfidenceThreshold: pc.EncodingConfidenceThreshold,
		FallbackEncoding:            pc.FallbackEncoding,
		ExtractComments:             pc.ExtractComments,
		ExtractDocstrings:           pc.ExtractDocstrings,
		MinFunctionLines:            pc.MinFunctionLines,
		MaxFunctionLines:            pc.MaxFunctionLines,
		IgnorePrivateMethods:        pc.IgnorePrivateMethods,
		ExtractChineseKeywords:      pc.ExtractChineseKeywords,
		ExtractEnglishKeywords:      pc.ExtractEnglishKeywords,
		MinKeywordLength:            pc.MinKeywordLength,
		MaxKeywordsPerSnippet:       pc.MaxKeywordsPerSnippet,
	}
}

// buildDriver wires a Directory Driver from loaded config. When withStore is
// true it also opens the repository's snapshot store, for incremental runs
// and diffing; the caller is responsible for closing the returned store.
func buildDriver(root string, loaded config.Loaded, withStore bool) (*directory.Driver, *bbolt.Store, error) {
	poolSize := loaded.Directory.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}

	registry := treesitter.NewRegistry(poolSize)
	extractor := treesitter.NewExtractor(registry)

	var store *bbolt.Store
	var manager *version.Manager
	if withStore {
		dbPath := filepath.Join(root, snapshotDBPath)
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create snapshot store dir: %w", err)
		}
		var err error
		store, err = bbolt.NewStore(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open snapshot store: %w", err)
		}
		manager = version.NewManager(store)
	}

	return directory.New(extractor, toPortsConfig(loaded.Parser), manager), store, nil
}
