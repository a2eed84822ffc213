package treesitter

import (
	"path"
	"strings"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

// splitPath derives directory and filename from a repository-relative,
// forward-slash path, for Snippet.Directory/Snippet.Filename (§3).
func splitPath(p string) (dir, filename string) {
	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	dir = path.Dir(clean)
	if dir == "." {
		dir = ""
	}
	filename = path.Base(clean)
	return dir, filename
}

// stripCommentDelimiters removes the comment-marker syntax for lang, leaving
// just the human-authored text, so attached comments read like documentation
// rather than source punctuation.
func stripCommentDelimiters(lang model.Language, raw string) string {
	s := raw
	switch lang {
	case model.LanguagePython, model.LanguageGo, model.LanguageC, model.LanguageCPP,
		model.LanguageJava, model.LanguageJavaScript, model.LanguageTypeScript, model.LanguageTSX,
		model.LanguageKotlin:
		if strings.HasPrefix(s, "/*") && strings.HasSuffix(s, "*/") {
			s = strings.TrimSuffix(strings.TrimPrefix(s, "/*"), "*/")
			return strings.TrimSpace(trimLinePrefixes(s, "*"))
		}
		s = strings.TrimPrefix(s, "//")
		s = strings.TrimPrefix(s, "#")
		return strings.TrimSpace(s)
	case model.LanguageLua:
		s = strings.TrimPrefix(s, "--[[")
		s = strings.TrimSuffix(s, "]]")
		s = strings.TrimPrefix(s, "--")
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(s)
	}
}

// trimLinePrefixes strips a leading marker (and surrounding space) from each
// line of a multi-line comment body, e.g. the "*" continuation style used in
// block comments.
func trimLinePrefixes(s, marker string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lines[i] = strings.TrimPrefix(trimmed, marker)
	}
	return strings.Join(lines, "\n")
}
