// Package textify converts a local repository into a single labeled text
// file. The pipeline is a sequential chain: resolve the root, walk the
// tree, classify each candidate, collect the included contents, and write
// the combined document once at the end.
package textify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/frizadiga/textify/pkg/ignore"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Run executes the full conversion pipeline for the given configuration.
// It returns *InvalidPathError when the root cannot be resolved and
// *WriteError when the output cannot be written; per-file read failures
// are recovered internally.
func Run(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	totalTimer := newTimer("total")

	root, err := ResolvePath(cfg.Path, logger)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		output = root.DefaultOutputName()
	}
	outputAbs, err := filepath.Abs(output)
	if err != nil {
		return &WriteError{Path: output, Err: err}
	}

	logger.Info("Starting conversion",
		zap.String("repository", root.Name),
		zap.String("path", root.Path),
		zap.String("output", output),
		zap.Float64("thresholdMB", cfg.ThresholdMB),
		zap.Bool("includeAll", cfg.IncludeAll))

	rules, err := ignore.Load(filepath.Join(root.Path, IgnoreFileName))
	if err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	if rules.Len() > 0 {
		logger.Debug("Loaded ignore patterns", zap.Int("ruleCount", rules.Len()))
	}

	discoveryTimer := newTimer("discovery")
	candidates := Candidates(root, rules, outputAbs, logger)
	if cfg.Profile {
		discoveryTimer.log(logger)
	}

	classifier := NewClassifier(cfg, rules, logger)
	reporter := NewConsoleReporter(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	collector := NewCollector(reporter, logger)

	collectTimer := newTimer("collection")
	sections, stats := collector.Collect(candidates, classifier)
	if cfg.Profile {
		collectTimer.log(logger)
	}

	writeTimer := newTimer("write")
	if err := WriteDocument(outputAbs, sections, logger); err != nil {
		return err
	}
	if cfg.Profile {
		writeTimer.log(logger)
	}

	logger.Info("Repository converted successfully",
		zap.String("output", output),
		zap.Int("processedFiles", stats.Processed),
		zap.Int("skippedFiles", stats.Skipped))

	if cfg.Profile {
		totalTimer.log(logger)
	}
	return nil
}
