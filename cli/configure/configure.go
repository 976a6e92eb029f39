// Package configure locates and loads the bootstrapp environment
// configuration.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/bootstrapp/bootstrapp/cli/config"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// ConfigName is the name of the bootstrapp configuration file.
const ConfigName = "bootstrapp.yaml"

// GetCliOpts loads configuration from configPath. When configPath is
// empty the file is searched in the current directory, then in the
// user's home directory; a missing file yields default options.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	if configPath == "" {
		configPath = findConfigPath()
	}
	if configPath == "" {
		return defaultCliOpts(), nil
	}

	rawOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, err
	}

	var cliOpts config.CliOpts
	if err := mapstructure.Decode(rawOpts, &cliOpts); err != nil {
		return nil, fmt.Errorf("failed to decode configuration %s: %s", configPath, err)
	}

	log.Debugf("Loaded configuration from %s", configPath)
	return &cliOpts, nil
}

func findConfigPath() string {
	if cwd, err := os.Getwd(); err == nil {
		configPath := filepath.Join(cwd, ConfigName)
		if util.IsRegularFile(configPath) {
			return configPath
		}
	}

	if homeDir, err := util.GetHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, "."+ConfigName)
		if util.IsRegularFile(configPath) {
			return configPath
		}
	}

	return ""
}

func defaultCliOpts() *config.CliOpts {
	cliOpts := config.CliOpts{}
	if cwd, err := os.Getwd(); err == nil {
		cliOpts.Templates = []config.TemplateOpts{{Path: cwd}}
	}
	return &cliOpts
}
