// File: pkg/textify/collect.go
package textify

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// placeholderBody replaces the content of files that cannot be read or
// decoded as text. The file still gets a labeled section so the output
// accounts for it.
const placeholderBody = "[Binary file or read error]"

// sectionRule separates file sections in the output document.
var sectionRule = strings.Repeat("=", 80)

// Collector reads included files and assembles the output document
// sections in traversal order.
type Collector struct {
	reporter ProgressReporter
	logger   *zap.Logger
}

// NewCollector builds a collector. A nil reporter disables progress
// reporting.
func NewCollector(reporter ProgressReporter, logger *zap.Logger) *Collector {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Collector{reporter: reporter, logger: logger}
}

// Collect classifies every candidate and builds one section per included
// file. Per-file read failures are recovered locally: the section carries a
// placeholder body and the run continues.
func (c *Collector) Collect(candidates []CandidateFile, classifier *Classifier) ([]Section, Stats) {
	var sections []Section
	var stats Stats

	c.reporter.Start(len(candidates))
	for i, f := range candidates {
		c.reporter.Step(i+1, f.RelPath)

		decision := classifier.Classify(f)
		if !decision.Include {
			stats.Skipped++
			c.logger.Debug("Skipping file",
				zap.String("file", f.RelPath),
				zap.String("reason", string(decision.Reason)),
				zap.Int64("sizeBytes", f.Size))
			continue
		}

		sections = append(sections, c.buildSection(f))
		stats.Processed++
	}
	c.reporter.Finish()

	c.logger.Debug("Completed collection",
		zap.Int("processed", stats.Processed),
		zap.Int("skipped", stats.Skipped))
	return sections, stats
}

// buildSection reads one file and wraps its content with the delimiter
// header identifying the relative path.
func (c *Collector) buildSection(f CandidateFile) Section {
	var b strings.Builder
	b.WriteString(sectionRule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "File: %s\n", f.RelPath)
	fmt.Fprintf(&b, "Size: %s\n", FormatFileSize(f.Size))
	b.WriteString(sectionRule)
	b.WriteString("\n\n")

	content, err := os.ReadFile(f.AbsPath)
	if err != nil || !utf8.Valid(content) {
		if err != nil {
			c.logger.Warn("Could not read file, writing placeholder",
				zap.String("file", f.RelPath), zap.Error(err))
		} else {
			c.logger.Warn("File is not valid text, writing placeholder",
				zap.String("file", f.RelPath))
		}
		b.WriteString(placeholderBody)
	} else {
		b.Write(content)
	}
	b.WriteString("\n\n")

	return Section{Path: f.RelPath, Body: b.String()}
}

// FormatFileSize renders a byte count in a human-readable form.
func FormatFileSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	value := float64(size)
	unit := 0

	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", size, units[unit])
	}
	return fmt.Sprintf("%.1f %s", value, units[unit])
}
