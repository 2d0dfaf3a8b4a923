package textify_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frizadiga/textify/pkg/ignore"
	"github.com/frizadiga/textify/pkg/textify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// tenByteThresholdMB yields an exact 10-byte threshold; 10/2^20 is exactly
// representable in a float64, so the conversion back to bytes is lossless.
const tenByteThresholdMB = 10.0 / (1024 * 1024)

// newCandidate writes a file under root and returns its candidate record.
func newCandidate(t *testing.T, root, rel string, data []byte) textify.CandidateFile {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, data, 0o644))
	return textify.CandidateFile{RelPath: rel, AbsPath: abs, Size: int64(len(data))}
}

func newClassifier(cfg textify.Config, rules *ignore.RuleSet) *textify.Classifier {
	if rules == nil {
		rules = ignore.New()
	}
	return textify.NewClassifier(cfg, rules, zap.NewNop())
}

func TestClassifySizeBoundary(t *testing.T) {
	dir := t.TempDir()
	c := newClassifier(textify.Config{ThresholdMB: tenByteThresholdMB}, nil)

	atLimit := newCandidate(t, dir, "at-limit.txt", []byte("0123456789"))
	overLimit := newCandidate(t, dir, "over-limit.txt", []byte("0123456789!"))

	d := c.Classify(atLimit)
	assert.True(t, d.Include, "file exactly at the threshold is included")
	assert.Equal(t, textify.ReasonIncluded, d.Reason)

	d = c.Classify(overLimit)
	assert.False(t, d.Include, "one byte over the threshold is excluded")
	assert.Equal(t, textify.ReasonTooLarge, d.Reason)
}

func TestClassifyBinaryContent(t *testing.T) {
	dir := t.TempDir()
	c := newClassifier(textify.Config{ThresholdMB: textify.DefaultThresholdMB}, nil)

	tests := []struct {
		name string
		rel  string
		data []byte
	}{
		{"null bytes", "data.dat", []byte{'E', 'L', 'F', 0, 1, 2}},
		{"non-printable prefix", "garbage.out", []byte(strings.Repeat("\x01\x02", 256))},
		{"binary extension with text content", "logo.png", []byte("not really an image")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(newCandidate(t, dir, tt.rel, tt.data))
			assert.False(t, d.Include)
			assert.Equal(t, textify.ReasonBinary, d.Reason)
		})
	}
}

func TestClassifyTextVariants(t *testing.T) {
	dir := t.TempDir()
	c := newClassifier(textify.Config{ThresholdMB: textify.DefaultThresholdMB}, nil)

	tests := []struct {
		name string
		rel  string
		data []byte
	}{
		{"plain ascii", "main.go", []byte("package main\n")},
		{"empty file", "empty.txt", nil},
		{"utf-8 text", "notes.txt", []byte("héllo wörld — ünïcode\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.Classify(newCandidate(t, dir, tt.rel, tt.data))
			assert.True(t, d.Include)
			assert.Equal(t, textify.ReasonIncluded, d.Reason)
		})
	}
}

func TestClassifyIgnoreRules(t *testing.T) {
	dir := t.TempDir()
	rules := ignore.New()
	rules.AddLines("*.secret")
	c := newClassifier(textify.Config{ThresholdMB: textify.DefaultThresholdMB}, rules)

	d := c.Classify(newCandidate(t, dir, "creds.secret", []byte("hunter2")))
	assert.False(t, d.Include)
	assert.Equal(t, textify.ReasonIgnored, d.Reason)
}

func TestClassifyIncludeAllOverride(t *testing.T) {
	dir := t.TempDir()
	rules := ignore.New()
	rules.AddLines("*.secret")
	c := newClassifier(textify.Config{
		ThresholdMB: tenByteThresholdMB,
		IncludeAll:  true,
	}, rules)

	big := newCandidate(t, dir, "big.txt", []byte(strings.Repeat("a", 100)))
	binary := newCandidate(t, dir, "blob.bin", []byte{0, 1, 2, 3})
	ignored := newCandidate(t, dir, "creds.secret", []byte("hunter2"))

	assert.True(t, c.Classify(big).Include, "size filter is bypassed")
	assert.True(t, c.Classify(binary).Include, "binary filter is bypassed")

	d := c.Classify(ignored)
	assert.False(t, d.Include, "ignore rules still apply under include-all")
	assert.Equal(t, textify.ReasonIgnored, d.Reason)
}

func TestThresholdBytes(t *testing.T) {
	assert.Equal(t, int64(104857), textify.Config{ThresholdMB: 0.1}.ThresholdBytes())
	assert.Equal(t, int64(1048576), textify.Config{ThresholdMB: 1}.ThresholdBytes())
	assert.Equal(t, int64(10), textify.Config{ThresholdMB: tenByteThresholdMB}.ThresholdBytes())
}
