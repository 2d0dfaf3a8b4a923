// File: pkg/textify/classify.go
package textify

import (
	"github.com/frizadiga/textify/pkg/ignore"

	"go.uber.org/zap"
)

// Classifier decides whether candidates are included in the output.
type Classifier struct {
	rules      *ignore.RuleSet
	threshold  int64
	includeAll bool
	logger     *zap.Logger
}

// NewClassifier builds a classifier from the run configuration.
func NewClassifier(cfg Config, rules *ignore.RuleSet, logger *zap.Logger) *Classifier {
	return &Classifier{
		rules:      rules,
		threshold:  cfg.ThresholdBytes(),
		includeAll: cfg.IncludeAll,
		logger:     logger,
	}
}

// Classify returns exactly one decision for the candidate. Ignore rules
// apply unconditionally; the include-all override bypasses only the binary
// and size checks. A file exactly at the threshold is included, one byte
// over is excluded.
func (c *Classifier) Classify(f CandidateFile) Decision {
	if matched, rule := c.rules.MatchDetail(f.RelPath, false); matched {
		if rule != nil {
			c.logger.Debug("File matches ignore pattern",
				zap.String("file", f.RelPath),
				zap.String("pattern", rule.Line),
				zap.Int("patternLine", rule.LineNo))
		}
		return Decision{Reason: ReasonIgnored}
	}

	if c.includeAll {
		return Decision{Include: true, Reason: ReasonIncluded}
	}

	if isBinaryExtension(f.RelPath) {
		return Decision{Reason: ReasonBinary}
	}

	binary, err := sniffBinary(f.AbsPath)
	if err != nil {
		// Unreadable files cannot be confirmed as text; skip them the same
		// way sniffed binaries are skipped.
		c.logger.Warn("Failed to sniff file content",
			zap.String("file", f.RelPath), zap.Error(err))
		return Decision{Reason: ReasonBinary}
	}
	if binary {
		return Decision{Reason: ReasonBinary}
	}

	if f.Size > c.threshold {
		return Decision{Reason: ReasonTooLarge}
	}

	return Decision{Include: true, Reason: ReasonIncluded}
}
