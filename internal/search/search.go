package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Options configures a single search invocation.
type Options struct {
	// Root is the directory to scan. It must exist.
	Root string
	// Pattern is the base-name glob for candidate files; empty means
	// DefaultPattern.
	Pattern string
	// Keywords are the terms to look for. Duplicates are dropped at this
	// boundary, preserving first-seen order and casing.
	Keywords []string
	// Workers is the requested concurrency; non-positive means the
	// detected CPU parallelism.
	Workers int
	// Mode picks the concurrency model; empty means ModeIsolated.
	Mode Mode
}

// Engine runs keyword searches. The zero value is not usable; construct
// with NewEngine.
type Engine struct {
	logger *zap.Logger
}

// NewEngine returns an Engine logging through the given logger. A nil
// logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Search enumerates matching files under opts.Root, partitions them into
// balanced chunks, scans the chunks concurrently under the selected driver
// and returns the merged result. Elapsed time covers the concurrent scan
// phase only, not enumeration or output formatting. Workers run to
// completion once started; there is no cancellation contract beyond the
// isolated driver's group context.
func (e *Engine) Search(ctx context.Context, opts Options) (*Report, error) {
	if len(opts.Keywords) == 0 {
		return nil, fmt.Errorf("at least one keyword is required")
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeIsolated
	}

	keywords := dedupeKeywords(opts.Keywords)

	files, err := Enumerate(opts.Root, opts.Pattern)
	if err != nil {
		return nil, err
	}
	chunks := Chunks(files, opts.Workers)

	e.logger.Debug("scan plan",
		zap.Int("files", len(files)),
		zap.Int("chunks", len(chunks)),
		zap.Int("keywords", len(keywords)),
		zap.String("mode", string(mode)))

	var (
		results Result
		elapsed float64
	)
	switch mode {
	case ModeShared:
		results, elapsed, err = scanShared(chunks, keywords)
	default:
		results, elapsed, err = scanIsolated(ctx, chunks, keywords)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Info("scan complete",
		zap.Int("files", len(files)),
		zap.Float64("elapsed_seconds", elapsed))

	return &Report{Results: results, ElapsedSeconds: elapsed}, nil
}
