// Package config defines the two typed configuration structs the core
// accepts (ParserConfig, DirectoryConfig) per spec §6, plus a viper-backed
// loader. Configuration *loading* is a collaborator concern — the core
// itself only ever consumes the already-populated structs.
package config

// ParserConfig controls the Snippet Extractor (§6).
type ParserConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size" json:"max_file_size"`

	EncodingConfidenceThreshold float64 `mapstructure:"encoding_confidence_threshold" json:"encoding_confidence_threshold"`
	DefaultEncoding             string  `mapstructure:"default_encoding" json:"default_encoding"`
	FallbackEncoding            string  `mapstructure:"fallback_encoding" json:"fallback_encoding"`

	ExtractComments   bool `mapstructure:"extract_comments" json:"extract_comments"`
	ExtractDocstrings bool `mapstructure:"extract_docstrings" json:"extract_docstrings"`

	MinFunctionLines int `mapstructure:"min_function_lines" json:"min_function_lines"`
	MaxFunctionLines int `mapstructure:"max_function_lines" json:"max_function_lines"`

	IgnorePrivateMethods bool `mapstructure:"ignore_private_methods" json:"ignore_private_methods"`

	ExtractChineseKeywords bool `mapstructure:"extract_chinese_keywords" json:"extract_chinese_keywords"`
	ExtractEnglishKeywords bool `mapstructure:"extract_english_keywords" json:"extract_english_keywords"`
	MinKeywordLength       int  `mapstructure:"min_keyword_length" json:"min_keyword_length"`
	MaxKeywordsPerSnippet  int  `mapstructure:"max_keywords_per_snippet" json:"max_keywords_per_snippet"`

	MaxCacheSize int `mapstructure:"max_cache_size" json:"max_cache_size"`
}

// DefaultParserConfig returns the defaults enumerated in spec §6.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MaxFileSize:                 10 * 1024 * 1024,
		EncodingConfidenceThreshold: 0.7,
		DefaultEncoding:             "utf-8",
		FallbackEncoding:            "gbk",
		ExtractComments:             true,
		ExtractDocstrings:           true,
		MinFunctionLines:            1,
		MaxFunctionLines:            1000,
		IgnorePrivateMethods:        false,
		ExtractChineseKeywords:      true,
		ExtractEnglishKeywords:      true,
		MinKeywordLength:            2,
		MaxKeywordsPerSnippet:       50,
		MaxCacheSize:                128,
	}
}

// ConfigMinimal favors speed: no comments, no docstrings, a tight keyword
// cap. Restores original_source's ConfigTemplates.minimal() preset, dropped
// from the distilled spec.
func ConfigMinimal() ParserConfig {
	c := DefaultParserConfig()
	c.ExtractComments = false
	c.ExtractDocstrings = false
	c.MaxKeywordsPerSnippet = 10
	return c
}

// ConfigPerformance favors large-repository throughput: comments on,
// docstrings off, a larger size ceiling, a small keyword cap. Restores
// original_source's ConfigTemplates.performance() preset.
func ConfigPerformance() ParserConfig {
	c := DefaultParserConfig()
	c.ExtractDocstrings = false
	c.MaxFileSize = 20 * 1024 * 1024
	c.MaxKeywordsPerSnippet = 20
	return c
}

// ConfigDetailed enables everything, with a generous keyword cap and no
// private-method filtering. Restores original_source's
// ConfigTemplates.detailed() preset.
func ConfigDetailed() ParserConfig {
	c := DefaultParserConfig()
	c.ExtractComments = true
	c.ExtractDocstrings = true
	c.IgnorePrivateMethods = false
	c.MaxKeywordsPerSnippet = 100
	return c
}

// ConfigChineseOptimized lowers the minimum keyword length (CJK tokens are
// information-dense per character) and keeps both keyword sources on.
// Restores original_source's ConfigTemplates.chinese_optimized() preset.
func ConfigChineseOptimized() ParserConfig {
	c := DefaultParserConfig()
	c.ExtractChineseKeywords = true
	c.ExtractEnglishKeywords = true
	c.MinKeywordLength = 1
	return c
}
