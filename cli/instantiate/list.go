package instantiate

import (
	"os"
	"path/filepath"

	"github.com/bootstrapp/bootstrapp/cli/config"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// BundleInfo describes a discovered template bundle.
type BundleInfo struct {
	// Name is the bundle directory name.
	Name string
	// ProjectType is the produced project kind, or "<invalid>" when the
	// specification cannot be decoded.
	ProjectType string
	// TemplateVersion is the template content version.
	TemplateVersion string
	// Description is the template description, or the decode error text
	// for an invalid bundle.
	Description string
}

// ListBundles discovers template bundles in the configured search paths.
// Bundles with an undecodable specification are reported, not skipped.
func ListBundles(cliOpts *config.CliOpts) []BundleInfo {
	bundles := make([]BundleInfo, 0)

	for _, templatesOpts := range cliOpts.Templates {
		entries, err := os.ReadDir(templatesOpts.Path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			specPath := filepath.Join(templatesOpts.Path, entry.Name(),
				spec.SpecFileName)
			if !util.IsRegularFile(specPath) {
				continue
			}
			loadedSpec, err := spec.Load(specPath)
			if err != nil {
				bundles = append(bundles, BundleInfo{
					Name:        entry.Name(),
					ProjectType: "<invalid>",
					Description: err.Error(),
				})
				continue
			}
			bundles = append(bundles, BundleInfo{
				Name:            entry.Name(),
				ProjectType:     loadedSpec.ProjectType.String(),
				TemplateVersion: loadedSpec.TemplateVersion,
				Description:     loadedSpec.Description,
			})
		}
	}

	return bundles
}
