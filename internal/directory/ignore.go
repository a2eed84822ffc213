package directory

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignored reports whether relPath (forward-slash, root-relative) matches any
// of patterns, tested against both the full relative path and each of its
// individual path segments — the two shapes spec §4.3's ignore_patterns
// wording calls for ("path segments and relative paths").
func ignored(relPath string, patterns []string) bool {
	segments := strings.Split(relPath, "/")
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, relPath); matched {
			return true
		}
		for _, seg := range segments {
			if matched, _ := doublestar.Match(pattern, seg); matched {
				return true
			}
		}
	}
	return false
}

// extensionAllowed reports whether path survives the only_extensions
// whitelist. An empty whitelist allows everything.
func extensionAllowed(path string, onlyExtensions []string) bool {
	if len(onlyExtensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range onlyExtensions {
		if strings.ToLower(want) == ext {
			return true
		}
	}
	return false
}
