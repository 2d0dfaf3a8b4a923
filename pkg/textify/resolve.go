package textify

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Root is a validated repository root.
type Root struct {
	Path string // Canonical absolute path.
	Name string // Repository display name, used for the default output filename.
}

// ResolvePath validates the given path and canonicalizes it to an absolute
// directory. An empty path means the current working directory.
func ResolvePath(path string, logger *zap.Logger) (Root, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Root{}, &InvalidPathError{Path: path, Err: err}
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return Root{}, &InvalidPathError{Path: absPath, Err: err}
	}
	if !info.IsDir() {
		return Root{}, &InvalidPathError{Path: absPath, Err: errors.New("not a directory")}
	}

	name := repoName(absPath, logger)
	logger.Debug("Resolved repository root",
		zap.String("path", absPath),
		zap.String("name", name))

	return Root{Path: absPath, Name: name}, nil
}

// DefaultOutputName derives the output filename from the repository name.
func (r Root) DefaultOutputName() string {
	return r.Name + ".textify.txt"
}

// repoName resolves the repository display name. Git's top-level directory
// name is preferred so that running from a subdirectory still names the
// output after the repository; the directory base name is the fallback when
// git is unavailable or the path is not inside a repository.
func repoName(absPath string, logger *zap.Logger) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = absPath
	out, err := cmd.Output()
	if err == nil {
		if top := strings.TrimSpace(string(out)); top != "" {
			return filepath.Base(top)
		}
	}

	logger.Debug("Could not resolve git toplevel, using directory name",
		zap.String("path", absPath))
	return filepath.Base(absPath)
}
