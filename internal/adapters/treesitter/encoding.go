package treesitter

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// decodeResult carries the decoded text plus the encoding name used, for
// ParseResult.metadata (§3's "encoding" key).
type decodeResult struct {
	text     []byte
	encoding string
	ok       bool
}

// decode implements pipeline step 2 (§4.2): attempt UTF-8, and on failure,
// if any fallback encoding is configured, decode as GBK when a confidence
// heuristic clears the configured threshold. GBK is the only fallback
// decoder: fallbackEncoding does not select a decoder, its value is only
// reported as the encoding name.
//
// There is no encoding-confidence-scoring library anywhere in the retrieved
// dependency surface, so the confidence heuristic itself (validRatio below)
// is hand-rolled; the actual decode once GBK is chosen as a candidate uses
// golang.org/x/text/encoding/simplifiedchinese, a real ecosystem decoder,
// not a bespoke one.
func decode(raw []byte, fallbackEncoding string, confidenceThreshold float64) decodeResult {
	if utf8.Valid(raw) {
		return decodeResult{text: raw, encoding: "utf-8", ok: true}
	}

	if fallbackEncoding == "" {
		return decodeResult{ok: false}
	}

	decoded, confidence := tryGBK(raw)
	if confidence >= confidenceThreshold {
		return decodeResult{text: decoded, encoding: fallbackEncoding, ok: true}
	}
	return decodeResult{ok: false}
}

// tryGBK decodes raw as GBK, substituting the Unicode replacement character
// for invalid byte sequences, and returns a confidence score: the fraction
// of runes in the decoded text that are NOT the replacement character.
func tryGBK(raw []byte) ([]byte, float64) {
	decoder := simplifiedchinese.GBK.NewDecoder()
	out, err := decoder.Bytes(raw)
	if err != nil || len(out) == 0 {
		return nil, 0
	}

	total := 0
	replacements := 0
	for _, r := range string(out) {
		total++
		if r == utf8.RuneError {
			replacements++
		}
	}
	if total == 0 {
		return out, 0
	}
	confidence := 1.0 - float64(replacements)/float64(total)
	return out, confidence
}
