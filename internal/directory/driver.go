// Package directory implements the Directory Driver (§4.3): it walks a
// repository tree, filters and classifies each surviving file, dispatches
// code files to the Snippet Extractor and text-like files to the Text
// Chunker, and aggregates the results — optionally incrementally, against a
// prior Snapshot from internal/version.
package directory

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/chunker"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/keywords"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/version"
)

var documentationExtensions = map[string]bool{".md": true, ".rst": true, ".txt": true}
var configExtensions = map[string]bool{".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true}

// Driver runs the Directory Driver pipeline over a filesystem tree.
type Driver struct {
	parser     ports.Parser
	parserCfg  ports.ParserConfig
	keywordCfg keywords.Config
	versions   *version.Manager
}

// New builds a Driver. versions may be nil when incremental mode is never
// used (RunIncremental then behaves like Run).
func New(parser ports.Parser, parserCfg ports.ParserConfig, versions *version.Manager) *Driver {
	return &Driver{
		parser:    parser,
		parserCfg: parserCfg,
		keywordCfg: keywords.Config{
			ExtractChineseKeywords: parserCfg.ExtractChineseKeywords,
			ExtractEnglishKeywords: parserCfg.ExtractEnglishKeywords,
			MinKeywordLength:       parserCfg.MinKeywordLength,
			MaxKeywordsPerSnippet:  parserCfg.MaxKeywordsPerSnippet,
		},
		versions: versions,
	}
}

// Run performs a full walk-and-parse of root per cfg. It never consults or
// updates a snapshot.
func (d *Driver) Run(ctx context.Context, root string, cfg config.DirectoryConfig) *model.DirectoryParseResult {
	result, _ := d.run(ctx, root, cfg, nil, false)
	return result
}

// RunIncremental performs an incremental run against repositoryID's latest
// snapshot (§4.3 step 5): only added/modified files are dispatched, deleted
// paths are reported as tombstones, and on success a new snapshot is saved
// under versionID.
func (d *Driver) RunIncremental(ctx context.Context, root string, cfg config.DirectoryConfig, repositoryID, versionID string) (*model.DirectoryParseResult, error) {
	if d.versions == nil {
		return d.Run(ctx, root, cfg), nil
	}
	prior, err := d.versions.Load(repositoryID)
	if err != nil {
		return nil, err
	}
	result, currentHashes := d.run(ctx, root, cfg, prior, true)
	if result.Cancelled {
		return result, nil
	}
	if err := d.versions.Save(repositoryID, versionID, currentHashes); err != nil {
		return result, err
	}
	return result, nil
}

type fileOutcome struct {
	relPath  string
	lang     model.Language
	snippets []*model.Snippet
	errMsg   string
	skipped  bool
}

// run is shared by Run and RunIncremental. prior is nil for a full run or a
// bootstrap incremental run (no prior snapshot yet). trackHashes is true
// whenever the caller is RunIncremental: even with no prior snapshot, the
// full path->hash map must be computed so RunIncremental has something to
// save. The second return value is that map (nil when trackHashes is false).
func (d *Driver) run(ctx context.Context, root string, cfg config.DirectoryConfig, prior *model.Snapshot, trackHashes bool) (*model.DirectoryParseResult, map[string]string) {
	start := time.Now()
	result := model.NewDirectoryParseResult(root)

	entries, tree, err := walk(root, cfg)
	if err != nil {
		result.Errors["<root>"] = model.NewParseError(model.ErrWalkFailure, root, err).Error()
		result.Elapsed = time.Since(start)
		return result, nil
	}
	result.DirectoryTree = tree
	result.TotalFilesSeen = len(entries)

	hasPrior := prior != nil
	var plan model.UpdatePlan
	var currentHashes map[string]string
	dispatchSet := make(map[string]bool, len(entries))

	if trackHashes {
		currentHashes = make(map[string]string, len(entries))
		for _, e := range entries {
			full, err := readFull(e.absPath)
			if err != nil {
				result.Errors[e.relPath] = model.NewParseError(model.ErrIORead, e.relPath, err).Error()
				continue
			}
			currentHashes[e.relPath] = model.ContentHashOf(full)
		}
		if hasPrior {
			plan = version.Diff(prior, currentHashes)
			for path := range plan.Added {
				dispatchSet[path] = true
			}
			for path := range plan.Modified {
				dispatchSet[path] = true
			}
			result.DeletedPaths = make([]string, 0, len(plan.Deleted))
			for path := range plan.Deleted {
				result.DeletedPaths = append(result.DeletedPaths, path)
			}
			sort.Strings(result.DeletedPaths)
			result.SkippedFiles += len(plan.Unchanged)
		}
	}

	poolSize := cfg.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	if poolSize < 1 {
		poolSize = 1
	}

	sem := make(chan struct{}, poolSize)
	var wg sync.WaitGroup
	outcomes := make(chan fileOutcome, len(entries))

	for _, e := range entries {
		select {
		case <-ctx.Done():
			result.Cancelled = true
		default:
		}
		if result.Cancelled {
			result.Errors["<cancelled>"] = model.NewParseError(model.ErrCancelled, root, nil).Error()
			break
		}
		if hasPrior && !dispatchSet[e.relPath] {
			continue
		}

		e := e
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes <- d.processFile(e, cfg)
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for oc := range outcomes {
		if oc.skipped {
			result.SkippedFiles++
			continue
		}
		result.ProcessedFiles++
		if oc.errMsg != "" {
			result.Errors[oc.relPath] = oc.errMsg
		}
		result.Snippets = append(result.Snippets, oc.snippets...)
		if oc.lang != model.LanguageNone {
			result.PerLanguageCounts[oc.lang]++
		}
	}

	sort.SliceStable(result.Snippets, func(i, j int) bool {
		return result.Snippets[i].Less(result.Snippets[j])
	})
	result.Elapsed = time.Since(start)
	return result, currentHashes
}

func (d *Driver) processFile(e walkEntry, cfg config.DirectoryConfig) fileOutcome {
	header, err := readHeader(e.absPath)
	if err != nil {
		return fileOutcome{relPath: e.relPath, errMsg: model.NewParseError(model.ErrIORead, e.relPath, err).Error()}
	}

	if isBinary, _ := classifyBinary(e.absPath, header); isBinary {
		if !cfg.RecordBinaryFiles {
			return fileOutcome{relPath: e.relPath, skipped: true}
		}
		dir, filename := splitPath(e.relPath)
		snippet := &model.Snippet{
			Kind: model.KindBinaryFile, Path: e.relPath, Directory: dir, Filename: filename,
			Name: filename, Code: nil, Language: model.LanguageNone,
		}
		snippet.ContentHash = model.ContentHashOf(header)
		return fileOutcome{relPath: e.relPath, snippets: []*model.Snippet{snippet}}
	}

	ext := strings.ToLower(filepath.Ext(e.relPath))
	if lang := model.LanguageForExtension(ext); lang != model.LanguageNone {
		if !d.parser.SupportsLanguage(lang) {
			return fileOutcome{relPath: e.relPath, errMsg: model.NewParseError(model.ErrLanguageUnavailable, e.relPath, nil).Error()}
		}
		full, err := readFull(e.absPath)
		if err != nil {
			return fileOutcome{relPath: e.relPath, errMsg: model.NewParseError(model.ErrIORead, e.relPath, err).Error()}
		}
		pr := d.parser.ParseFile(e.relPath, full, lang, d.parserCfg)
		var errMsg string
		if len(pr.Errors) > 0 {
			errMsg = pr.Errors[0].Error()
		}
		return fileOutcome{relPath: e.relPath, lang: lang, snippets: pr.Snippets, errMsg: errMsg}
	}

	var kind model.Kind
	switch {
	case documentationExtensions[ext] && cfg.ExtractDocumentation:
		kind = model.KindDocumentation
	case configExtensions[ext] && cfg.ExtractConfigFiles:
		kind = model.KindConfigFile
	case cfg.ExtractTextFiles:
		kind = model.KindTextChunk
	default:
		return fileOutcome{relPath: e.relPath, skipped: true}
	}

	full, err := readFull(e.absPath)
	if err != nil {
		return fileOutcome{relPath: e.relPath, errMsg: model.NewParseError(model.ErrIORead, e.relPath, err).Error()}
	}
	snippets := chunker.Chunk(e.relPath, full, kind, cfg, d.keywordCfg)
	return fileOutcome{relPath: e.relPath, snippets: snippets}
}

// readFull reads an entire file's bytes. processFile calls it only once a
// file has survived binary classification; incremental runs also call it up
// front for every walked file, binary or not, to compute its content hash.
func readFull(absPath string) ([]byte, error) {
	return os.ReadFile(absPath)
}

// splitPath mirrors the treesitter/chunker packages' own helper: it is kept
// local rather than shared to avoid a cross-package dependency for three
// lines of path.Dir/path.Base logic.
func splitPath(p string) (dir, filename string) {
	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	dir = path.Dir(clean)
	if dir == "." {
		dir = ""
	}
	filename = path.Base(clean)
	return dir, filename
}
