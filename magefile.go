//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/bootstrapp/bootstrapp/cli"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}

	goExecutableName = "go"
)

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}
}

func getBuildEnv() map[string]string {
	gitTag, _ := sh.Output("git", "describe", "--tags")
	gitCommit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
	}
}

// Build builds the bootstrapp executable.
func Build() error {
	fmt.Println("Building bootstrapp...")

	return sh.RunWith(getBuildEnv(), goExecutableName, "build",
		"-ldflags", strings.Join(ldflags, " "),
		"-o", "bootstrapp", packagePath)
}

// Unit runs unit tests.
func Unit() error {
	fmt.Println("Running unit tests...")

	return sh.RunV(goExecutableName, "test", "-C", packagePath, "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	fmt.Println("Running golangci-lint...")

	return sh.RunV("golangci-lint", "run", "--config=golangci-lint.yml")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning...")

	return os.RemoveAll("bootstrapp")
}
