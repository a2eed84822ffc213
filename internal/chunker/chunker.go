// Package chunker implements the Text Chunker (§4.3): the fallback
// processor for non-code files, which slides a window over decoded text and
// merges undersized trailing windows into their predecessor.
package chunker

import (
	"path"
	"strconv"
	"strings"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/config"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/keywords"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
)

// Chunk splits text into overlapping windows and returns one Snippet per
// window, using kind for every emitted snippet (Documentation or
// ConfigFile, per the caller's classification of path's extension) and
// keywordCfg for keyword harvesting.
func Chunk(filePath string, text []byte, kind model.Kind, cfg config.DirectoryConfig, keywordCfg keywords.Config) []*model.Snippet {
	if len(text) == 0 {
		return nil
	}

	// chunk_size/chunk_overlap/min_chunk_size are specified in characters
	// (§6), not bytes, so windows are computed over runes — slicing raw
	// UTF-8 bytes at arbitrary offsets would split a multi-byte character
	// (CJK text in particular) in half at a chunk boundary.
	runes := []rune(string(text))
	windows := slide(runes, cfg.ChunkSize, cfg.ChunkOverlap)
	windows = mergeShort(windows, cfg.MinChunkSize)

	dir, filename := splitPath(filePath)
	stem := strings.TrimSuffix(filename, path.Ext(filename))
	snippets := make([]*model.Snippet, 0, len(windows))
	for i, w := range windows {
		codeRunes := runes[w.start:w.end]
		code := []byte(string(codeRunes))
		lineStart := countLines(runes[:w.start]) + 1
		lineEnd := lineStart + countLines(codeRunes)

		snippet := &model.Snippet{
			Kind:      kind,
			Path:      filePath,
			Directory: dir,
			Filename:  filename,
			Name:      stem + "_chunk_" + strconv.Itoa(i),
			Code:      append([]byte(nil), code...),
			LineStart: lineStart,
			LineEnd:   lineEnd,
			Language:  model.LanguageNone,
		}
		snippet.ContentHash = model.ContentHashOf(snippet.Code)
		snippet.Keywords = keywords.Harvest(filePath, snippet.Code, nil, keywordCfg)
		snippets = append(snippets, snippet)
	}
	return snippets
}

// splitPath derives directory and filename from a repository-relative,
// forward-slash path.
func splitPath(p string) (dir, filename string) {
	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	dir = path.Dir(clean)
	if dir == "." {
		dir = ""
	}
	filename = path.Base(clean)
	return dir, filename
}

// window is a [start, end) span of rune indices, not byte offsets.
type window struct {
	start, end int
}

// slide computes chunkSize-character windows over runes advancing by
// chunkSize-chunkOverlap each step, per §6's chunk_size/chunk_overlap.
// Indexing by rune rather than byte keeps every window boundary on a
// character boundary, which matters for multi-byte UTF-8 text.
func slide(runes []rune, chunkSize, chunkOverlap int) []window {
	if chunkSize <= 0 {
		chunkSize = len(runes)
	}
	stride := chunkSize - chunkOverlap
	if stride <= 0 {
		stride = chunkSize
	}

	var windows []window
	for start := 0; start < len(runes); start += stride {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, window{start: start, end: end})
		if end == len(runes) {
			break
		}
	}
	if len(windows) == 0 {
		windows = append(windows, window{start: 0, end: len(runes)})
	}
	return windows
}

// mergeShort folds any window shorter than minChunkSize into its
// predecessor, per §4.3's "chunks shorter than min_chunk_size are merged
// into the previous chunk".
func mergeShort(windows []window, minChunkSize int) []window {
	if len(windows) < 2 {
		return windows
	}
	out := make([]window, 0, len(windows))
	for _, w := range windows {
		if len(out) > 0 && (w.end-w.start) < minChunkSize {
			out[len(out)-1].end = w.end
			continue
		}
		out = append(out, w)
	}
	return out
}

func countLines(rs []rune) int {
	n := 0
	for _, r := range rs {
		if r == '\n' {
			n++
		}
	}
	return n
}
