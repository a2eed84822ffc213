// Package model holds the data types that cross package boundaries in the
// parsing core: languages, snippets, parse results, and snapshots.
package model

// Language is a closed enumeration of supported source languages.
// An empty Language ("") means "no language detected" — the zero value
// doubles as LanguageNone so a plain map lookup miss is already correct.
type Language string

const (
	LanguageNone       Language = ""
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageTSX        Language = "tsx"
	LanguageJava       Language = "java"
	LanguageGo         Language = "go"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguageKotlin     Language = "kotlin"
	LanguageLua        Language = "lua"
)

// extensionToLanguage is the total mapping from file extension (including
// the leading dot) to Language. Extensions not present here yield
// LanguageNone, which routes the file to the text/binary pipeline.
var extensionToLanguage = map[string]Language{
	".py":   LanguagePython,
	".pyi":  LanguagePython,
	".js":   LanguageJavaScript,
	".jsx":  LanguageJavaScript,
	".mjs":  LanguageJavaScript,
	".cjs":  LanguageJavaScript,
	".ts":   LanguageTypeScript,
	".mts":  LanguageTypeScript,
	".cts":  LanguageTypeScript,
	".tsx":  LanguageTSX,
	".java": LanguageJava,
	".go":   LanguageGo,
	".c":    LanguageC,
	".h":    LanguageC,
	".cpp":  LanguageCPP,
	".cc":   LanguageCPP,
	".cxx":  LanguageCPP,
	".hpp":  LanguageCPP,
	".hh":   LanguageCPP,
	".kt":   LanguageKotlin,
	".kts":  LanguageKotlin,
	".lua":  LanguageLua,
}

// LanguageForExtension returns the Language mapped to ext (leading dot
// included) or LanguageNone if the extension is unmapped.
func LanguageForExtension(ext string) Language {
	return extensionToLanguage[ext]
}

// SupportedLanguages returns the closed set of languages the registry knows,
// in a stable order.
func SupportedLanguages() []Language {
	return []Language{
		LanguagePython, LanguageJavaScript, LanguageTypeScript, LanguageTSX,
		LanguageJava, LanguageGo, LanguageC, LanguageCPP, LanguageKotlin, LanguageLua,
	}
}
