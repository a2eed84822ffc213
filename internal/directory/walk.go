package directory

import (
	"os"
	"path/filepath"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
)

// walkEntry is one surviving file discovered by walk, ready for dispatch.
type walkEntry struct {
	relPath string // forward-slash, root-relative
	absPath string
}

// walk performs the pre-order, depth-capped, pattern-filtered traversal of
// §4.3: os.ReadDir order at each level (lexicographic, files and
// subdirectories interleaved as returned), descended into immediately.
// Symbolic links are not followed unless cfg.FollowSymlinks is set; when
// they are, a visited-real-path set guards against cycles.
func walk(root string, cfg config.DirectoryConfig) ([]walkEntry, []string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, nil, err
	}

	w := &walker{
		absRoot: absRoot,
		cfg:     cfg,
		visited: make(map[string]bool),
	}
	w.visit(absRoot, "", 0)
	return w.entries, w.tree, nil
}

type walker struct {
	absRoot string
	cfg     config.DirectoryConfig
	visited map[string]bool
	entries []walkEntry
	tree    []string
}

func (w *walker) visit(absDir, relDir string, depth int) {
	if w.cfg.MaxDepth >= 0 && depth > w.cfg.MaxDepth {
		return
	}
	if w.cfg.MaxFiles > 0 && len(w.entries) >= w.cfg.MaxFiles {
		return
	}

	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return // unreadable subtree: skip, not terminal (only the root is terminal)
	}

	for _, de := range dirEntries {
		if w.cfg.MaxFiles > 0 && len(w.entries) >= w.cfg.MaxFiles {
			return
		}

		name := de.Name()
		relPath := name
		if relDir != "" {
			relPath = relDir + "/" + name
		}
		absPath := filepath.Join(absDir, name)

		if ignored(relPath, w.cfg.IgnorePatterns) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if !w.cfg.FollowSymlinks {
				continue
			}
			resolved, err := filepath.EvalSymlinks(absPath)
			if err != nil || w.visited[resolved] {
				continue
			}
			w.visited[resolved] = true
			resolvedInfo, err := os.Stat(resolved)
			if err != nil {
				continue
			}
			if resolvedInfo.IsDir() {
				if w.cfg.IncludeDirectoryStructure {
					w.tree = append(w.tree, relPath+"/")
				}
				w.visit(resolved, relPath, depth+1)
				continue
			}
			if extensionAllowed(relPath, w.cfg.OnlyExtensions) {
				w.entries = append(w.entries, walkEntry{relPath: relPath, absPath: resolved})
			}
			continue
		}

		if de.IsDir() {
			if w.cfg.IncludeDirectoryStructure {
				w.tree = append(w.tree, relPath+"/")
			}
			w.visit(absPath, relPath, depth+1)
			continue
		}

		if !extensionAllowed(relPath, w.cfg.OnlyExtensions) {
			continue
		}
		w.entries = append(w.entries, walkEntry{relPath: relPath, absPath: absPath})
	}
}
