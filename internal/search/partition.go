package search

import "runtime"

// Chunks splits the sorted file list into at most workers contiguous,
// near-equal chunks. Chunk size is ceil(len/W), so the final chunk may be
// shorter. A non-positive worker count falls back to the detected CPU
// parallelism. An empty file list yields no chunks. The chunks are a total,
// non-overlapping cover of the input: no file is scanned twice or dropped.
func Chunks(files []string, workers int) [][]string {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(files) == 0 {
		return nil
	}

	k := (len(files) + workers - 1) / workers
	chunks := make([][]string, 0, workers)
	for i := 0; i < len(files); i += k {
		end := i + k
		if end > len(files) {
			end = len(files)
		}
		chunks = append(chunks, files[i:end])
	}
	return chunks
}
