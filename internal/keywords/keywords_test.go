package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarvestIncludesFileStem(t *testing.T) {
	got := Harvest("src/calc.py", []byte("def add(a, b): return a + b"), nil, Config{
		ExtractEnglishKeywords: true,
		MinKeywordLength:       2,
		MaxKeywordsPerSnippet:  50,
	})

	assert.Contains(t, strings.Fields(got), "calc")
}

func TestHarvestDeduplicates(t *testing.T) {
	got := Harvest("f.py", []byte("def add(add, add): return add"), nil, Config{
		ExtractEnglishKeywords: true,
		MinKeywordLength:       1,
		MaxKeywordsPerSnippet:  50,
	})

	count := 0
	for _, tok := range strings.Fields(got) {
		if tok == "add" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestHarvestRespectsCap(t *testing.T) {
	got := Harvest("f.py", []byte("aaa bbb ccc ddd eee"), nil, Config{
		ExtractEnglishKeywords: true,
		MinKeywordLength:       1,
		MaxKeywordsPerSnippet:  2,
	})

	assert.LessOrEqual(t, len(strings.Fields(got)), 2)
}

func TestHarvestExtractsCJKRunsFromCodeAndComment(t *testing.T) {
	got := Harvest("f.py", []byte("# 中文注释\ndef foo(): pass"), []byte("计算总和"), Config{
		ExtractChineseKeywords: true,
		MinKeywordLength:       1,
		MaxKeywordsPerSnippet:  50,
	})

	assert.Contains(t, got, "中文注释")
	assert.Contains(t, got, "计算总和")
}

func TestHarvestExtractsEnglishTokensFromCommentToo(t *testing.T) {
	got := Harvest("src/calc.py", []byte("def add(self, a, b): return a + b"), []byte("Adds two numbers."), Config{
		ExtractEnglishKeywords: true,
		MinKeywordLength:       1,
		MaxKeywordsPerSnippet:  50,
	})

	fields := strings.Fields(got)
	for _, want := range []string{"add", "self", "a", "b", "Adds", "two", "numbers", "calc"} {
		assert.Contains(t, fields, want)
	}
}

func TestHarvestMinLengthFilters(t *testing.T) {
	got := Harvest("f.py", []byte("a bb ccc"), nil, Config{
		ExtractEnglishKeywords: true,
		MinKeywordLength:       3,
		MaxKeywordsPerSnippet:  50,
	})

	fields := strings.Fields(got)
	assert.NotContains(t, fields, "a")
	assert.NotContains(t, fields, "bb")
	assert.Contains(t, fields, "ccc")
}

func TestHarvestDisabledExtractorsYieldOnlyStem(t *testing.T) {
	got := Harvest("helpers.py", []byte("def add(a, b): return a + b"), nil, Config{
		MinKeywordLength:      1,
		MaxKeywordsPerSnippet: 50,
	})

	assert.Equal(t, "helpers", got)
}
