// Package treesitter implements the Grammar Registry and Snippet Extractor
// (spec §4.1, §4.2) on top of go-tree-sitter and the go-sitter-forest
// per-language grammar packages.
package treesitter

import (
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	sf_c "github.com/alexaandru/go-sitter-forest/c"
	sf_cpp "github.com/alexaandru/go-sitter-forest/cpp"
	sf_go "github.com/alexaandru/go-sitter-forest/go"
	sf_java "github.com/alexaandru/go-sitter-forest/java"
	sf_javascript "github.com/alexaandru/go-sitter-forest/javascript"
	sf_kotlin "github.com/alexaandru/go-sitter-forest/kotlin"
	sf_lua "github.com/alexaandru/go-sitter-forest/lua"
	sf_python "github.com/alexaandru/go-sitter-forest/python"
	sf_tsx "github.com/alexaandru/go-sitter-forest/tsx"
	sf_typescript "github.com/alexaandru/go-sitter-forest/typescript"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

// langPtr wraps a Language() call that returns unsafe.Pointer.
func langPtr(p unsafe.Pointer) *tree_sitter.Language {
	return tree_sitter.NewLanguage(p)
}

// builtinGrammars returns the compiled-in grammar for every language in the
// closed enumeration (model.SupportedLanguages). All ten grammars (the nine
// languages, with TypeScript and TSX as separate grammars) ship as
// go-sitter-forest packages, so there is no dynamic-loading path here.
func builtinGrammars() map[model.Language]*tree_sitter.Language {
	return map[model.Language]*tree_sitter.Language{
		model.LanguagePython:     langPtr(sf_python.GetLanguage()),
		model.LanguageJavaScript: langPtr(sf_javascript.GetLanguage()),
		model.LanguageTypeScript: langPtr(sf_typescript.GetLanguage()),
		model.LanguageTSX:        langPtr(sf_tsx.GetLanguage()),
		model.LanguageJava:       langPtr(sf_java.GetLanguage()),
		model.LanguageGo:         langPtr(sf_go.GetLanguage()),
		model.LanguageC:          langPtr(sf_c.GetLanguage()),
		model.LanguageCPP:        langPtr(sf_cpp.GetLanguage()),
		model.LanguageKotlin:     langPtr(sf_kotlin.GetLanguage()),
		model.LanguageLua:        langPtr(sf_lua.GetLanguage()),
	}
}
