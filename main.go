package main

import (
	"os"
	"strings"

	"github.com/frizadiga/textify/cmd"
	"github.com/frizadiga/textify/pkg/logging"

	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()

	// Flush buffered log entries before exiting. Syncing stderr fails with
	// EINVAL on some platforms when stderr is a pipe, so only attempt it for
	// terminals and regular files, and tolerate that specific failure.
	if logger := logging.Logger; logger != nil {
		if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
			if syncErr := logger.Sync(); syncErr != nil {
				if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
					os.Stderr.WriteString("logger sync failed: " + syncErr.Error() + "\n")
				}
			}
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
