package textify_test

import (
	"path/filepath"
	"testing"

	"github.com/frizadiga/textify/pkg/ignore"
	"github.com/frizadiga/textify/pkg/textify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func relPaths(files []textify.CandidateFile) []string {
	var rels []string
	for _, f := range files {
		rels = append(rels, f.RelPath)
	}
	return rels
}

func TestCandidatesPrunesMetadataDirectories(t *testing.T) {
	dir := t.TempDir()
	root := textify.Root{Path: dir, Name: filepath.Base(dir)}

	newCandidate(t, dir, "a.txt", []byte("a"))
	newCandidate(t, dir, "sub/b.txt", []byte("b"))
	newCandidate(t, dir, ".git/config", []byte("[core]"))
	newCandidate(t, dir, ".git/objects/ab/cdef", []byte{0, 1})
	newCandidate(t, dir, "node_modules/pkg/index.js", []byte("x"))
	newCandidate(t, dir, "__pycache__/mod.pyc", []byte{0})

	files := textify.Candidates(root, ignore.New(), "", zap.NewNop())

	assert.Equal(t, []string{"a.txt", "sub/b.txt"}, relPaths(files))
}

func TestCandidatesDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	root := textify.Root{Path: dir, Name: filepath.Base(dir)}

	newCandidate(t, dir, "z.txt", []byte("z"))
	newCandidate(t, dir, "a.txt", []byte("a"))
	newCandidate(t, dir, "m/inner.txt", []byte("m"))
	newCandidate(t, dir, "b/deep/leaf.txt", []byte("b"))

	first := textify.Candidates(root, ignore.New(), "", zap.NewNop())
	second := textify.Candidates(root, ignore.New(), "", zap.NewNop())

	require.Equal(t, relPaths(first), relPaths(second), "two runs on an unmodified tree yield the same order")
	assert.Equal(t, []string{"a.txt", "b/deep/leaf.txt", "m/inner.txt", "z.txt"}, relPaths(first))
}

func TestCandidatesHonorsIgnoredDirectories(t *testing.T) {
	dir := t.TempDir()
	root := textify.Root{Path: dir, Name: filepath.Base(dir)}

	newCandidate(t, dir, "keep.txt", []byte("k"))
	newCandidate(t, dir, "generated/out.txt", []byte("g"))

	rules := ignore.New()
	rules.AddLines("generated/")

	files := textify.Candidates(root, rules, "", zap.NewNop())

	assert.Equal(t, []string{"keep.txt"}, relPaths(files))
}

func TestCandidatesSkipsOutputFile(t *testing.T) {
	dir := t.TempDir()
	root := textify.Root{Path: dir, Name: filepath.Base(dir)}

	newCandidate(t, dir, "a.txt", []byte("a"))
	out := newCandidate(t, dir, "repo.textify.txt", []byte("previous run"))

	files := textify.Candidates(root, ignore.New(), out.AbsPath, zap.NewNop())

	assert.Equal(t, []string{"a.txt"}, relPaths(files))
}

func TestCandidatesRecordsSizes(t *testing.T) {
	dir := t.TempDir()
	root := textify.Root{Path: dir, Name: filepath.Base(dir)}

	newCandidate(t, dir, "ten.txt", []byte("0123456789"))

	files := textify.Candidates(root, ignore.New(), "", zap.NewNop())
	require.Len(t, files, 1)

	assert.Equal(t, int64(10), files[0].Size)
	assert.Equal(t, filepath.Join(dir, "ten.txt"), files[0].AbsPath)
}

func TestWalkStopsWhenConsumerBreaks(t *testing.T) {
	dir := t.TempDir()
	root := textify.Root{Path: dir, Name: filepath.Base(dir)}

	newCandidate(t, dir, "a.txt", []byte("a"))
	newCandidate(t, dir, "b.txt", []byte("b"))
	newCandidate(t, dir, "c.txt", []byte("c"))

	var seen []string
	for f := range textify.Walk(root, ignore.New(), "", zap.NewNop()) {
		seen = append(seen, f.RelPath)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"a.txt", "b.txt"}, seen)
}
