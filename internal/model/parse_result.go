package model

import "time"

// ParseResult is the per-file output of the Snippet Extractor.
type ParseResult struct {
	Language Language
	Path     string
	Snippets []*Snippet
	Errors   []*ParseError
	Metadata map[string]any // file_size, encoding, ...
	ProcessingTime time.Duration
}

// IsSuccessful reports whether the file produced a usable result:
// a language was detected and no errors were recorded. Errors do not
// clear Snippets — partial results are preserved regardless.
func (r *ParseResult) IsSuccessful() bool {
	return r.Language != LanguageNone && len(r.Errors) == 0
}

// FileSize returns the file_size metadata key, or 0 if absent.
func (r *ParseResult) FileSize() int64 {
	if v, ok := r.Metadata["file_size"].(int64); ok {
		return v
	}
	return 0
}

// Encoding returns the encoding metadata key, or "" if absent.
func (r *ParseResult) Encoding() string {
	if v, ok := r.Metadata["encoding"].(string); ok {
		return v
	}
	return ""
}

// DirectoryParseResult is the aggregated, per-tree output of the Directory
// Driver.
type DirectoryParseResult struct {
	Root            string
	TotalFilesSeen  int
	ProcessedFiles  int
	SkippedFiles    int
	Snippets        []*Snippet
	Errors          map[string]string // path -> message
	PerLanguageCounts map[Language]int
	DirectoryTree   []string // populated only if IncludeDirectoryStructure
	Elapsed         time.Duration

	// DeletedPaths carries tombstones for incremental mode (§4.3 step 5):
	// paths present in the prior snapshot but absent from the current walk.
	// These are not snippets; they are a synthetic, implementation-defined
	// result field.
	DeletedPaths []string

	// Cancelled is set when a cancellation signal was observed before the
	// walk completed naturally; partial results above are still valid.
	Cancelled bool
}

// NewDirectoryParseResult returns a DirectoryParseResult ready for
// incremental append-only aggregation.
func NewDirectoryParseResult(root string) *DirectoryParseResult {
	return &DirectoryParseResult{
		Root:              root,
		Errors:            make(map[string]string),
		PerLanguageCounts: make(map[Language]int),
	}
}
