package directory

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// binaryDetectWindow is the number of leading bytes inspected for the
// NUL-byte heuristic, per spec §4.3 ("presence of NUL bytes in the first
// 8 KiB").
const binaryDetectWindow = 8 * 1024

// knownBinaryExtensions short-circuits the read-and-sniff path for the
// common cases, mirroring the reference stack's own binary-extension table.
var knownBinaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".bmp": true, ".tiff": true, ".webp": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".pdf": true, ".zip": true, ".tar": true, ".gz": true, ".bz2": true,
	".xz": true, ".7z": true, ".rar": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".o": true, ".a": true,
	".mp3": true, ".mp4": true, ".wav": true, ".ogg": true, ".flac": true,
	".avi": true, ".mkv": true, ".mov": true, ".webm": true,
	".db": true, ".sqlite": true, ".class": true, ".pyc": true,
}

// classifyBinary reports whether path is binary, using the extension table
// as a fast path and falling back to a NUL-byte scan plus MIME sniffing of
// the leading bytes already read into header.
func classifyBinary(path string, header []byte) (isBinary bool, mime string) {
	if knownBinaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return true, http.DetectContentType(header)
	}
	if bytes.IndexByte(header, 0) >= 0 {
		return true, http.DetectContentType(header)
	}
	return false, http.DetectContentType(header)
}

// readHeader reads up to binaryDetectWindow bytes from path without loading
// the whole file, for binary classification ahead of a full read.
func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, binaryDetectWindow)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}
