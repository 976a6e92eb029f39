package spec

import (
	"fmt"
	"strings"

	"github.com/adam-hanna/arrayOperations"
)

// PackageRef is a package manager dependency reference. It is opaque data:
// merged and carried through, never resolved or fetched.
type PackageRef struct {
	// Name is the package name.
	Name string
	// URL is the package location.
	URL string
	// VersionConstraint is the package version requirement.
	VersionConstraint string
}

// String renders the reference back in the name=url[@constraint]
// definition form.
func (ref PackageRef) String() string {
	definition := ref.Name + "=" + ref.URL
	if ref.VersionConstraint != "" {
		definition += "@" + ref.VersionConstraint
	}
	return definition
}

// ParsePackageRef parses a "name=url@constraint" definition. The
// "@constraint" part is optional.
func ParsePackageRef(definition string) (PackageRef, error) {
	name, rest, found := strings.Cut(strings.TrimSpace(definition), "=")
	if !found || name == "" || rest == "" {
		return PackageRef{}, fmt.Errorf(
			"wrong package definition format: %q, expected name=url[@constraint]",
			definition)
	}

	ref := PackageRef{Name: name}
	ref.URL, ref.VersionConstraint, _ = strings.Cut(rest, "@")
	return ref, nil
}

// MergePackages merges specification packages with additions, dropping
// every package whose name is in exclusions. Additions win over
// specification entries with the same name; order is first-seen.
func MergePackages(specPackages, additions []PackageRef, exclusions []string) []PackageRef {
	excluded := make(map[string]bool, len(exclusions))
	for _, name := range arrayOperations.DistinctString(exclusions) {
		excluded[name] = true
	}

	byName := make(map[string]PackageRef)
	names := make([]string, 0, len(specPackages)+len(additions))
	for _, ref := range append(append([]PackageRef{}, specPackages...), additions...) {
		if excluded[ref.Name] {
			continue
		}
		if _, found := byName[ref.Name]; !found {
			names = append(names, ref.Name)
		}
		byName[ref.Name] = ref
	}

	merged := make([]PackageRef, 0, len(names))
	for _, name := range names {
		merged = append(merged, byName[name])
	}
	return merged
}
