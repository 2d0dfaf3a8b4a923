package version_test

import (
	"testing"

	"github.com/frizadiga/textify/pkg/version"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := version.Get()

	assert.Equal(t, version.Version, v.Version)
	assert.Equal(t, version.Commit, v.Commit)
	assert.Contains(t, v.Platform, "/")
	assert.NotEmpty(t, v.GoVersion)
}

func TestInfoString(t *testing.T) {
	v := version.Info{
		Version:   "1.2.3",
		Commit:    "abcdefg",
		BuildTime: "2026-01-02T15:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}

	s := v.String()
	assert.Contains(t, s, "textify 1.2.3")
	assert.Contains(t, s, "abcdefg")
	assert.Contains(t, s, "linux/amd64")
	assert.Contains(t, s, "built 2026-01-02T15:04:05Z")
}
