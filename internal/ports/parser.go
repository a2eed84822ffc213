// Package ports defines the interfaces (contracts) that adapters must
// implement. These are the boundaries of the hexagonal architecture: domain
// logic (internal/directory, internal/version) depends only on these
// interfaces, never on concrete implementations.
package ports

import "github.com/XingYu-Zhong/CodeRepoIndex/internal/model"

// Parser is the parsing contract the Directory Driver consumes: report
// whether a language is supported, and extract a ParseResult from a file's
// bytes. Parser handles stay inside the implementation.
type Parser interface {
	// SupportsLanguage reports whether the registry has a grammar for lang.
	SupportsLanguage(lang model.Language) bool

	// ParseFile runs the Snippet Extractor pipeline (§4.2) over source under
	// the given repository-relative path and language, using cfg to gate
	// size, encoding, comments, and keyword harvesting.
	ParseFile(path string, source []byte, lang model.Language, cfg ParserConfig) *model.ParseResult
}

// ParserConfig is the subset of internal/config.ParserConfig the Parser
// contract needs, expressed independently so internal/ports does not import
// internal/config (which would invert the dependency direction — config is
// a leaf consumed by the wiring layer, ports is a boundary consumed by
// domain logic).
type ParserConfig struct {
	MaxFileSize                 int64
	EncodingConfidenceThreshold float64
	FallbackEncoding            string
	ExtractComments             bool
	ExtractDocstrings           bool
	MinFunctionLines            int
	MaxFunctionLines            int
	IgnorePrivateMethods        bool
	ExtractChineseKeywords      bool
	ExtractEnglishKeywords      bool
	MinKeywordLength            int
	MaxKeywordsPerSnippet       int
}
