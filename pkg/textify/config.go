// File: pkg/textify/config.go
package textify

// DefaultThresholdMB is the default file size threshold in megabytes.
const DefaultThresholdMB = 0.1

// IgnoreFileName is the per-repository ignore file read from the root.
const IgnoreFileName = ".textifyignore"

// Config holds the options for a single conversion run.
type Config struct {
	Path        string  // Repository path to process; empty means the current directory.
	Output      string  // Destination for the combined output; empty derives <repo>.textify.txt.
	ThresholdMB float64 // Maximum file size in MB; larger files are excluded.
	IncludeAll  bool    // Include files regardless of size or binary detection.
	Debug       bool    // Enables verbose logging of skipped files.
	Profile     bool    // Log per-stage timing information.
}

// ThresholdBytes converts the configured megabyte threshold to bytes.
func (c Config) ThresholdBytes() int64 {
	return int64(c.ThresholdMB * 1024 * 1024)
}
