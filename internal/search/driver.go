package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Mode selects the concurrency model used to run chunk scans.
type Mode string

const (
	// ModeIsolated runs each worker with private state and collects
	// partial results over a channel; no memory is shared between workers.
	ModeIsolated Mode = "isolated"
	// ModeShared has all workers merge into one aggregate map guarded by
	// a single mutex held only during the merge, never during file I/O.
	ModeShared Mode = "shared"
)

// ParseMode validates a mode string from config or flags.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeIsolated, ModeShared:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown scan mode %q (want %q or %q)", s, ModeIsolated, ModeShared)
	}
}

// scanIsolated drives one worker per chunk with no shared mutable state.
// Each worker computes a private partial result and hands it off through a
// buffered channel; the driver performs exactly one receive per worker and
// merges as results arrive. A panicking worker is surfaced as an error and
// fails the whole run, since its chunk would otherwise be silently missing
// from the aggregate.
func scanIsolated(ctx context.Context, chunks [][]string, keywords []string) (Result, float64, error) {
	aggregate := newResult(keywords)
	parts := make(chan Result, len(chunks))

	start := time.Now()
	g, _ := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("scan worker panicked: %v", r)
				}
			}()
			parts <- scanChunk(chunk, keywords)
			return nil
		})
	}

	var collected int
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	for collected < len(chunks) {
		select {
		case part := <-parts:
			merge(aggregate, part)
			collected++
		case err := <-done:
			if err != nil {
				return nil, 0, err
			}
			// All workers finished cleanly; drain remaining handoffs.
			for collected < len(chunks) {
				merge(aggregate, <-parts)
				collected++
			}
		}
	}
	elapsed := time.Since(start).Seconds()

	return aggregate, elapsed, nil
}

// scanShared drives one worker per chunk over a single shared aggregate.
// Each worker scans its chunk into a local partial result first, then takes
// the mutex only to append its entries, keeping the critical section to the
// merge alone. The WaitGroup join guarantees the aggregate is quiescent
// before it is read.
func scanShared(chunks [][]string, keywords []string) (Result, float64, error) {
	aggregate := newResult(keywords)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	start := time.Now()
	for _, chunk := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("scan worker panicked: %v", r)
					}
					mu.Unlock()
				}
			}()

			part := scanChunk(chunk, keywords)

			mu.Lock()
			merge(aggregate, part)
			mu.Unlock()
		}()
	}
	wg.Wait()
	elapsed := time.Since(start).Seconds()

	if firstErr != nil {
		return nil, 0, firstErr
	}
	return aggregate, elapsed, nil
}
