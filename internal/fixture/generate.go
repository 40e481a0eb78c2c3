// Package fixture generates synthetic text corpora for exercising the scan
// engine: directory shards of .txt files filled with background vocabulary
// and probabilistically injected keywords in varied casing.
package fixture

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// basicVocab is the background word pool. Mixed languages on purpose, so
// generated files exercise non-ASCII content paths.
var basicVocab = strings.Fields(`
сад місто небо ріка сонце вітер ліс камінь вода день ніч час людина книга музика
code data system thread process memory network service python java csharp golang rust
flower love rose tulip lily garden spring summer autumn winter happy joy bright light
`)

// Config parameterizes corpus generation. A fixed Seed yields a
// byte-identical tree across runs.
type Config struct {
	OutDir   string
	Files    int
	Subdirs  int
	MinWords int
	MaxWords int
	Keywords []string
	Seed     int64
}

// Generate populates cfg.OutDir with cfg.Files text files spread round-robin
// across shard subdirectories. Roughly three quarters of the files get the
// keywords sprinkled in at 1-5% density with mutated casing. Randomness
// comes from a generator scoped to this call, never the process-wide source,
// so equal seeds reproduce equal corpora. Returns the number of files
// written; files that fail to write are logged and skipped.
func Generate(cfg Config, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Files < 1 {
		cfg.Files = 1
	}
	if cfg.Subdirs < 1 {
		cfg.Subdirs = 1
	}
	if cfg.MinWords < 5 {
		cfg.MinWords = 5
	}
	if cfg.MaxWords < cfg.MinWords {
		cfg.MaxWords = cfg.MinWords
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	shards := make([]string, cfg.Subdirs)
	for i := range shards {
		shards[i] = filepath.Join(cfg.OutDir, fmt.Sprintf("shard_%02d", i))
		if err := os.MkdirAll(shards[i], 0o755); err != nil {
			return 0, fmt.Errorf("creating shard dir: %w", err)
		}
	}

	written := 0
	for idx := 0; idx < cfg.Files; idx++ {
		shard := shards[idx%len(shards)]
		path := filepath.Join(shard, fmt.Sprintf("doc_%05d.txt", idx))

		n := cfg.MinWords + rng.Intn(cfg.MaxWords-cfg.MinWords+1)
		words := randomWords(rng, n)
		if rng.Float64() < 0.75 {
			density := 0.01 + rng.Float64()*0.04
			words = sprinkleKeywords(rng, words, cfg.Keywords, density)
		}

		if err := os.WriteFile(path, []byte(strings.Join(words, " ")), 0o644); err != nil {
			logger.Warn("could not write fixture file", zap.String("path", path), zap.Error(err))
			continue
		}
		written++
	}
	return written, nil
}

func randomWords(rng *rand.Rand, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = basicVocab[rng.Intn(len(basicVocab))]
	}
	return words
}

// sprinkleKeywords inserts keywords after random positions with the given
// per-word probability, mutating case (mostly lower, sometimes UPPER or
// Title) and occasionally doubling the insertion.
func sprinkleKeywords(rng *rand.Rand, words, keywords []string, density float64) []string {
	if len(keywords) == 0 || density <= 0 {
		return words
	}

	out := make([]string, 0, len(words)+len(words)/16)
	for _, w := range words {
		out = append(out, w)
		if rng.Float64() < density {
			out = append(out, mutateCase(rng, keywords[rng.Intn(len(keywords))]))
			if rng.Float64() < 0.2 {
				out = append(out, mutateCase(rng, keywords[rng.Intn(len(keywords))]))
			}
		}
	}
	return out
}

func mutateCase(rng *rand.Rand, w string) string {
	r := rng.Float64()
	switch {
	case r < 0.7:
		return strings.ToLower(w)
	case r < 0.85:
		return strings.ToUpper(w)
	default:
		return strings.Title(strings.ToLower(w)) //nolint:staticcheck // word-at-a-time casing is intended
	}
}
