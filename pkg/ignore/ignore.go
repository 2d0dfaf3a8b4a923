// Package ignore implements gitignore-style exclusion rules for textify.
//
// Rules are read from a .textifyignore file at the repository root. The
// supported syntax follows gitignore: blank lines and '#' comments are
// skipped, '!' negates, a trailing '/' restricts a pattern to directories,
// a leading '/' anchors a pattern to the root, and patterns without a
// slash match at any depth. Matching itself is delegated to doublestar,
// so '*', '?', '**' and character classes behave as in gitignore.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule is a single parsed ignore pattern.
type Rule struct {
	Pattern string // doublestar pattern, matched against slash-separated relative paths
	Negate  bool   // pattern re-includes matching paths
	DirOnly bool   // pattern applies only to directories and their contents
	Line    string // original pattern line
	LineNo  int    // line number in the source (1-based)
}

// RuleSet holds ignore rules in declaration order. The last matching rule
// wins, so later rules override earlier ones as in gitignore.
type RuleSet struct {
	rules []Rule
}

// New returns an empty rule set.
func New() *RuleSet {
	return &RuleSet{}
}

// Load reads rules from the given ignore files, in order. Files that do
// not exist are silently skipped; any other read error is returned.
func Load(paths ...string) (*RuleSet, error) {
	rs := New()
	for _, path := range paths {
		if path == "" {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		rs.AddLines(strings.Split(string(content), "\n")...)
	}
	return rs, nil
}

// AddLines parses pattern lines and appends the resulting rules.
func (rs *RuleSet) AddLines(lines ...string) {
	for i, line := range lines {
		if rule, ok := parseLine(line, i+1); ok {
			rs.rules = append(rs.rules, rule)
		}
	}
}

// Len reports the number of compiled rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Match reports whether the relative path is excluded by the rule set.
// isDir tells the matcher whether the path names a directory, which is
// needed for directory-only patterns.
func (rs *RuleSet) Match(relPath string, isDir bool) bool {
	matched, _ := rs.MatchDetail(relPath, isDir)
	return matched
}

// MatchDetail reports whether the path is excluded and returns the
// deciding rule, the last one that matched. The rule is nil when no rule
// matched at all.
func (rs *RuleSet) MatchDetail(relPath string, isDir bool) (bool, *Rule) {
	relPath = filepath.ToSlash(relPath)

	matched := false
	var deciding *Rule
	for i := range rs.rules {
		if rs.rules[i].matches(relPath, isDir) {
			matched = !rs.rules[i].Negate
			deciding = &rs.rules[i]
		}
	}
	return matched, deciding
}

// matches checks a single rule against a slash-separated relative path.
// A pattern that matches a directory also matches everything beneath it.
func (r Rule) matches(relPath string, isDir bool) bool {
	// The "/**/*" suffix requires at least one segment beyond the pattern,
	// so it covers descendants without matching the base path itself. A
	// plain file sharing a directory-only pattern's name must not match.
	if ok, _ := doublestar.Match(r.Pattern+"/**/*", relPath); ok {
		return true
	}
	if r.DirOnly && !isDir {
		return false
	}
	ok, _ := doublestar.Match(r.Pattern, relPath)
	return ok
}

// parseLine converts one ignore-file line into a Rule. The second return
// value is false for blank lines, comments, and patterns that do not
// compile.
func parseLine(line string, lineNo int) (Rule, bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Rule{}, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Escaped leading '#' or '!' are literal.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := false
	if strings.HasSuffix(trimmed, "/") {
		dirOnly = true
		trimmed = strings.TrimSuffix(trimmed, "/")
	}

	pattern := trimmed
	if strings.HasPrefix(pattern, "/") {
		// Leading '/' anchors the pattern to the repository root.
		pattern = strings.TrimPrefix(pattern, "/")
	} else if !strings.Contains(pattern, "/") {
		// A pattern without a slash matches at any depth.
		pattern = "**/" + pattern
	}

	if !doublestar.ValidatePattern(pattern) {
		return Rule{}, false
	}

	return Rule{
		Pattern: pattern,
		Negate:  negate,
		DirOnly: dirOnly,
		Line:    line,
		LineNo:  lineNo,
	}, true
}
