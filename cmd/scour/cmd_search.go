package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scour/internal/search"
)

var (
	searchPath     string
	searchKeywords []string
	searchWorkers  int
	searchGlob     string
	searchMode     string
)

// searchCmd runs a full scan and prints the result document
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a directory tree for keywords",
	Long: `Scans every matching text file under --path for the given keywords
and prints a JSON document mapping each keyword to the files that contain
it, plus the elapsed scan time in seconds.

Examples:
  scour search --path data --keywords rose love
  scour search --path data --keywords rose --workers 8 --mode shared`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchPath, "path", "", "directory to scan (required)")
	searchCmd.Flags().StringSliceVar(&searchKeywords, "keywords", nil, "keywords to search for (required)")
	searchCmd.Flags().IntVar(&searchWorkers, "workers", 0, "worker count (0 = config default, then CPU count)")
	searchCmd.Flags().StringVar(&searchGlob, "glob", "", "file name glob (default from config, *.txt)")
	searchCmd.Flags().StringVar(&searchMode, "mode", "", "concurrency model: isolated or shared")
	_ = searchCmd.MarkFlagRequired("path")
	_ = searchCmd.MarkFlagRequired("keywords")
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Flags override config defaults
	workers := cfg.Search.Workers
	if searchWorkers > 0 {
		workers = searchWorkers
	}
	pattern := cfg.Search.Pattern
	if searchGlob != "" {
		pattern = searchGlob
	}
	modeStr := cfg.Search.Mode
	if searchMode != "" {
		modeStr = searchMode
	}
	mode, err := search.ParseMode(modeStr)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))
	log.Debug("starting search",
		zap.String("path", searchPath),
		zap.Strings("keywords", searchKeywords),
		zap.Int("workers", workers),
		zap.String("mode", string(mode)))

	engine := search.NewEngine(log)
	report, err := engine.Search(cmd.Context(), search.Options{
		Root:     searchPath,
		Pattern:  pattern,
		Keywords: searchKeywords,
		Workers:  workers,
		Mode:     mode,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
