package bundle

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundlePaths(t *testing.T) {
	b := Bundle{RootPath: filepath.Join("some", "root")}

	assert.Equal(t, filepath.Join("some", "root", "Content"), b.ContentPath())
	assert.Equal(t, filepath.Join("some", "root", "Presets"), b.PresetsPath())
	assert.Equal(t, filepath.Join("some", "root", "Bootstrapp.json"), b.SpecPath())
}

func TestIsExcludedDirectoryPrefix(t *testing.T) {
	runCtx := NewRunCtx()
	runCtx.DirBlacklist = []string{"Foo", "Nested/Dir"}

	assert.True(t, runCtx.IsExcluded("Foo"))
	assert.True(t, runCtx.IsExcluded("Foo/file.txt"))
	assert.True(t, runCtx.IsExcluded("Foo/sub/deep.txt"))
	assert.True(t, runCtx.IsExcluded("Nested/Dir/x"))

	// Prefixes match on path-segment boundaries only.
	assert.False(t, runCtx.IsExcluded("Foo2"))
	assert.False(t, runCtx.IsExcluded("Foo2/file.txt"))
	assert.False(t, runCtx.IsExcluded("Foo-bar"))
	assert.False(t, runCtx.IsExcluded("Foobar/file.txt"))
	assert.False(t, runCtx.IsExcluded("Nested/Dir2"))
	assert.False(t, runCtx.IsExcluded("Nested"))
}

func TestIsExcludedFileExactMatch(t *testing.T) {
	runCtx := NewRunCtx()
	runCtx.FileBlacklist["Sources/shim.swift"] = true

	assert.True(t, runCtx.IsExcluded("Sources/shim.swift"))
	assert.False(t, runCtx.IsExcluded("Sources/shim.swift.orig"))
	assert.False(t, runCtx.IsExcluded("Sources/shim.swif"))
	assert.False(t, runCtx.IsExcluded("Other/Sources/shim.swift"))
	// File entries never exclude by prefix.
	assert.False(t, runCtx.IsExcluded("Sources/shim.swift/extra"))
}

func TestRunCtxParam(t *testing.T) {
	runCtx := NewRunCtx()
	assert.Nil(t, runCtx.Param("MISSING"))
}
