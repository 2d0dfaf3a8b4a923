// File: pkg/textify/writer.go
package textify

import (
	"bufio"
	"os"

	"go.uber.org/zap"
)

// WriteDocument serializes the sections to the destination path in order,
// truncating any existing file. All filesystem failures surface as a
// *WriteError.
func WriteDocument(path string, sections []Section, logger *zap.Logger) error {
	logger.Debug("Writing combined content to output file", zap.String("output", path))

	outFile, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	writer := bufio.NewWriter(outFile)
	for _, section := range sections {
		if _, err := writer.WriteString(section.Body); err != nil {
			outFile.Close()
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := writer.Flush(); err != nil {
		outFile.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := outFile.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	logger.Debug("Successfully wrote output file",
		zap.String("output", path),
		zap.Int("sections", len(sections)))
	return nil
}
