package search

import (
	"os"
	"strings"
)

// scanChunk reads every file in the chunk and records which keywords appear
// in its content, case-insensitively. Files that cannot be read are skipped
// so a single bad file never aborts the chunk. Invalid UTF-8 bytes are
// dropped before matching instead of failing the scan. The content is
// lower-cased once per file; matches preserve the chunk's file order.
func scanChunk(paths, keywords []string) Result {
	out := newResult(keywords)
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		text := strings.ToLower(strings.ToValidUTF8(string(data), ""))
		for i, kw := range keywords {
			if strings.Contains(text, lowered[i]) {
				out[kw] = append(out[kw], path)
			}
		}
	}
	return out
}
