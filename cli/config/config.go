// Package config describes the bootstrapp environment configuration.
package config

// TemplateOpts contains configuration of a single template search path.
type TemplateOpts struct {
	// Path is a directory to search for template bundles in.
	Path string `mapstructure:"path"`
}

// ResultsOpts contains configuration of instantiation results placement.
type ResultsOpts struct {
	// Dir is the root under which per-date result directories are
	// created. Empty means the system temporary directory.
	Dir string `mapstructure:"dir"`
}

// CliOpts is the decoded bootstrapp.yaml configuration.
type CliOpts struct {
	// Templates are template bundle search paths, in lookup order.
	Templates []TemplateOpts `mapstructure:"templates"`
	// Results configures where instantiated projects are written.
	Results ResultsOpts `mapstructure:"results"`
}
