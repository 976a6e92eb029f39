// Package generator defines the external IDE project file generator
// collaborator invoked for Xcode project templates.
package generator

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/bootstrapp/bootstrapp/cli/util"
)

// ProjectGenerator produces an IDE project file from a generated
// configuration document.
type ProjectGenerator interface {
	// Generate produces a project file from the configuration at
	// configPath into outputDirPath and returns the produced path.
	Generate(configPath, outputDirPath string, data map[string]interface{}) (string, error)
}

// XcodegenGenerator invokes an external xcodegen-compatible binary.
type XcodegenGenerator struct {
	// Binary is the generator executable name or path.
	Binary string
	// Verbose streams generator output to the terminal.
	Verbose bool
}

// NewXcodegenGenerator returns a generator using the xcodegen binary.
func NewXcodegenGenerator(verbose bool) *XcodegenGenerator {
	return &XcodegenGenerator{Binary: "xcodegen", Verbose: verbose}
}

// Generate runs the external generator with the configuration document.
// Context values are exported to the generator process environment as
// BOOTSTRAPP_<KEY> variables.
func (g *XcodegenGenerator) Generate(configPath, outputDirPath string,
	data map[string]interface{},
) (string, error) {
	if !util.IsRegularFile(configPath) {
		return "", fmt.Errorf("project configuration file %s does not exist", configPath)
	}

	cmd := exec.Command(g.Binary, "generate", "--spec", configPath,
		"--project", outputDirPath)
	cmd.Env = append(os.Environ(), contextEnviron(data)...)

	var output bytes.Buffer
	if g.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &output
		cmd.Stderr = &output
	}

	log.Debugf("Running %s for %s", g.Binary, configPath)
	if err := cmd.Run(); err != nil {
		if output.Len() != 0 {
			log.Errorf("%s output:\n%s", g.Binary, output.String())
		}
		return "", fmt.Errorf("project generation failed: %s", err)
	}

	configName := filepath.Base(configPath)
	projectName := strings.TrimSuffix(configName, filepath.Ext(configName))
	return filepath.Join(outputDirPath, projectName+".xcodeproj"), nil
}

func contextEnviron(data map[string]interface{}) []string {
	environ := make([]string, 0, len(data))
	for key, value := range data {
		environ = append(environ, fmt.Sprintf("BOOTSTRAPP_%s=%v", key, value))
	}
	return environ
}
