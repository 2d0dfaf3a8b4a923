// File: pkg/textify/traversal.go
package textify

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/frizadiga/textify/pkg/ignore"

	"go.uber.org/zap"
)

// excludedDirs are directory names that are never descended into,
// regardless of ignore rules: version-control metadata, dependency caches,
// and build output.
var excludedDirs = map[string]bool{
	".git":                true,
	".svn":                true,
	".hg":                 true,
	"node_modules":        true,
	"target":              true,
	"build":               true,
	"dist":                true,
	".vscode":             true,
	".idea":               true,
	"__pycache__":         true,
	".pytest_cache":       true,
	"coverage":            true,
	".nyc_output":         true,
	"vendor":              true,
	"deps":                true,
	"cmake-build-debug":   true,
	"cmake-build-release": true,
}

// Walk returns a lazy sequence of candidate files under root, in
// deterministic lexical order. Excluded and ignored directories are pruned
// before descent. skipAbs names one absolute path that is never yielded,
// used to keep the output file out of its own input. Traversal errors are
// logged and the affected entries skipped; they never abort the walk.
func Walk(root Root, rules *ignore.RuleSet, skipAbs string, logger *zap.Logger) iter.Seq[CandidateFile] {
	return func(yield func(CandidateFile) bool) {
		_ = filepath.WalkDir(root.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("Error accessing path during traversal",
					zap.String("path", path), zap.Error(err))
				return nil
			}
			if path == root.Path {
				return nil
			}

			relPath, relErr := filepath.Rel(root.Path, path)
			if relErr != nil {
				logger.Warn("Failed to relativize path during traversal",
					zap.String("path", path), zap.Error(relErr))
				return nil
			}
			relPath = filepath.ToSlash(relPath)

			if d.IsDir() {
				if excludedDirs[d.Name()] || rules.Match(relPath, true) {
					logger.Debug("Skipping excluded directory",
						zap.String("directory", relPath))
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || path == skipAbs {
				return nil
			}

			info, infoErr := d.Info()
			if infoErr != nil {
				logger.Warn("Failed to stat file during traversal",
					zap.String("path", path), zap.Error(infoErr))
				return nil
			}

			if !yield(CandidateFile{RelPath: relPath, AbsPath: path, Size: info.Size()}) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// Candidates materializes Walk into a slice so that the total count is
// known before collection begins, which the progress reporter needs.
func Candidates(root Root, rules *ignore.RuleSet, skipAbs string, logger *zap.Logger) []CandidateFile {
	var files []CandidateFile
	for f := range Walk(root, rules, skipAbs, logger) {
		files = append(files, f)
	}
	logger.Debug("Completed file discovery", zap.Int("candidates", len(files)))
	return files
}
