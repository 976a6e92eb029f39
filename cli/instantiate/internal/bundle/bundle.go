// Package bundle holds the template bundle model and the state carried
// across instantiation pipeline steps.
package bundle

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/engines"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/generator"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
)

const (
	// ContentDirName is the bundle subdirectory holding the tree to
	// instantiate.
	ContentDirName = "Content"
	// PresetsDirName is the bundle subdirectory consumed by the project
	// generator.
	PresetsDirName = "Presets"
	// PlaceholderFileName marks files that keep otherwise-empty template
	// directories present. Such files are never instantiated.
	PlaceholderFileName = ".bootstrapp-keep"
)

// Bundle is a template bundle on disk. Two bundles are equal iff their
// root paths are equal.
type Bundle struct {
	// RootPath is the bundle directory.
	RootPath string
	// Spec is the decoded specification.
	Spec *spec.Specification
}

// ContentPath returns the bundle content tree root.
func (b *Bundle) ContentPath() string {
	return filepath.Join(b.RootPath, ContentDirName)
}

// PresetsPath returns the bundle presets directory.
func (b *Bundle) PresetsPath() string {
	return filepath.Join(b.RootPath, PresetsDirName)
}

// SpecPath returns the bundle specification document path.
func (b *Bundle) SpecPath() string {
	return filepath.Join(b.RootPath, spec.SpecFileName)
}

// RunCtx is the state of a single instantiation run. Every run owns its
// own RunCtx; nothing is shared across runs.
type RunCtx struct {
	// Bundle is the loaded template bundle.
	Bundle Bundle
	// Parameters is the run's working copy of the specification
	// parameter list. Overrides replace entries with value copies, the
	// specification's own list stays untouched.
	Parameters []spec.Parameter
	// SetParams tracks parameter ids explicitly set by the caller.
	SetParams map[string]bool
	// Now is the single time point of the run, resolved once when the
	// rendering context is built. Time context values and date-stamped
	// output paths always agree, even across midnight.
	Now time.Time
	// Context is the rendering context.
	Context *spec.Context
	// Engine is the template engine used for rendering and condition
	// evaluation.
	Engine engines.TemplateEngine
	// Generator produces IDE project files for Xcode project templates.
	Generator generator.ProjectGenerator
	// ContentPaths holds slash-separated relative paths of the content
	// tree, directories before their content.
	ContentPaths []string
	// DirBlacklist holds excluded directory paths. A content path is
	// excluded when a blacklisted directory is a path-segment prefix.
	DirBlacklist []string
	// FileBlacklist holds excluded file paths, matched exactly.
	FileBlacklist map[string]bool
	// Packages is the merged package list.
	Packages []spec.PackageRef
	// OutputPath is the output directory of the run.
	OutputPath string
	// ResultPath is the final reported path: the output directory, or
	// the generated project file for Xcode project templates.
	ResultPath string
}

// NewRunCtx creates a run context with the default collaborators.
func NewRunCtx() RunCtx {
	return RunCtx{
		SetParams:     make(map[string]bool),
		Context:       spec.NewContext(),
		Engine:        engines.NewDefaultEngine(),
		FileBlacklist: make(map[string]bool),
	}
}

// Param returns a pointer to the working copy of the parameter with the
// given id, or nil.
func (runCtx *RunCtx) Param(id string) *spec.Parameter {
	for i := range runCtx.Parameters {
		if runCtx.Parameters[i].ID == id {
			return &runCtx.Parameters[i]
		}
	}
	return nil
}

// IsExcluded reports whether the slash-separated relative path relPath is
// excluded from instantiation by the computed blacklists. Directory
// prefixes match on path-segment boundaries only: blacklisted "Foo" does
// not exclude "Foo2".
func (runCtx *RunCtx) IsExcluded(relPath string) bool {
	if runCtx.FileBlacklist[relPath] {
		return true
	}
	for _, dir := range runCtx.DirBlacklist {
		if relPath == dir || strings.HasPrefix(relPath, dir+"/") {
			return true
		}
	}
	return false
}
