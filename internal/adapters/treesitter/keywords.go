package treesitter

import (
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/keywords"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
)

// harvestKeywords implements pipeline step 9 (§4.2) by delegating to the
// keywords package shared with the Text Chunker, translating the extractor's
// own config shape into keywords.Config.
func harvestKeywords(path string, code, comment []byte, cfg ports.ParserConfig) string {
	return keywords.Harvest(path, code, comment, keywords.Config{
		ExtractChineseKeywords: cfg.ExtractChineseKeywords,
		ExtractEnglishKeywords: cfg.ExtractEnglishKeywords,
		MinKeywordLength:       cfg.MinKeywordLength,
		MaxKeywordsPerSnippet:  cfg.MaxKeywordsPerSnippet,
	})
}
