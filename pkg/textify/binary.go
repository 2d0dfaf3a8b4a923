// File: pkg/textify/binary.go
package textify

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is the number of leading bytes inspected for binary content.
const sniffLen = 512

// binaryExtensions are file extensions that are always treated as binary
// without sniffing the content.
var binaryExtensions = map[string]bool{
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".bin": true,
	".obj": true, ".o": true, ".a": true, ".lib": true,
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".ico": true, ".svg": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".wav": true,
	".flac": true,
	".zip": true, ".tar": true, ".gz": true, ".rar": true, ".7z": true,
	".bz2": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
}

// sniffBinary checks whether a file is likely binary by reading its first
// few bytes and looking for null bytes or a high ratio of non-printable
// characters.
func sniffBinary(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	// Null bytes are the strongest binary signal.
	if bytes.Contains(buffer, []byte{0}) {
		return true, nil
	}

	if len(buffer) == 0 {
		return false, nil // Empty files are considered text.
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// More than 30% non-printable characters counts as binary.
	return float64(nonPrintable)/float64(len(buffer)) > 0.3, nil
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 128
}

// isBinaryExtension checks if the file has a known binary extension.
func isBinaryExtension(path string) bool {
	return binaryExtensions[strings.ToLower(filepath.Ext(path))]
}
