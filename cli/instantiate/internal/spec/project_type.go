package spec

import "fmt"

type projectTypeKind int

const (
	projectGeneral projectTypeKind = iota
	projectSwiftPackage
	projectXcode
	projectGeneralMeta
	projectSwiftMeta
	projectXcodeMeta
)

// Project type names recognized in a specification document.
const (
	TypeNameGeneral      = "General"
	TypeNameSwiftPackage = "Swift Package"
	TypeNameXcodeProject = "Xcode Project"
	TypeNameGeneralMeta  = "General Meta Template"
	TypeNameSwiftMeta    = "Swift Meta Template"
	TypeNameXcodeMeta    = "Xcode Meta Template"
)

// ProjectType is a closed project type variant. Only the Xcode project
// variant carries a payload: the name of the project configuration file
// inside the instantiated tree.
type ProjectType struct {
	kind           projectTypeKind
	configFileName string
}

// GeneralProject returns the general project type.
func GeneralProject() ProjectType {
	return ProjectType{kind: projectGeneral}
}

// SwiftPackageProject returns the Swift package project type.
func SwiftPackageProject() ProjectType {
	return ProjectType{kind: projectSwiftPackage}
}

// XcodeProject returns the Xcode project type with its configuration
// file name.
func XcodeProject(configFileName string) ProjectType {
	return ProjectType{kind: projectXcode, configFileName: configFileName}
}

// ParseProjectType parses a project type name from a specification
// document. configFileName is required for the Xcode project type and
// ignored for every other type.
func ParseProjectType(name, configFileName string) (ProjectType, error) {
	switch name {
	case TypeNameGeneral:
		return GeneralProject(), nil
	case TypeNameSwiftPackage:
		return SwiftPackageProject(), nil
	case TypeNameXcodeProject:
		if configFileName == "" {
			return ProjectType{}, fmt.Errorf("%q project type: %w",
				name, ErrMissingProjectConfig)
		}
		return XcodeProject(configFileName), nil
	case TypeNameGeneralMeta:
		return ProjectType{kind: projectGeneralMeta}, nil
	case TypeNameSwiftMeta:
		return ProjectType{kind: projectSwiftMeta}, nil
	case TypeNameXcodeMeta:
		return ProjectType{kind: projectXcodeMeta}, nil
	}
	return ProjectType{}, fmt.Errorf("%q: %w", name, ErrUnsupportedProjectType)
}

// IsXcode reports whether the type requires external project generation.
func (t ProjectType) IsXcode() bool {
	return t.kind == projectXcode
}

// IsMeta reports whether the type is a meta template: instantiation
// produces other template bundles, generation is short-circuited.
func (t ProjectType) IsMeta() bool {
	return t.kind == projectGeneralMeta || t.kind == projectSwiftMeta ||
		t.kind == projectXcodeMeta
}

// ConfigFileName returns the project configuration file name for the
// Xcode project type and an empty string otherwise.
func (t ProjectType) ConfigFileName() string {
	return t.configFileName
}

// String returns the document name of the project type.
func (t ProjectType) String() string {
	switch t.kind {
	case projectSwiftPackage:
		return TypeNameSwiftPackage
	case projectXcode:
		return TypeNameXcodeProject
	case projectGeneralMeta:
		return TypeNameGeneralMeta
	case projectSwiftMeta:
		return TypeNameSwiftMeta
	case projectXcodeMeta:
		return TypeNameXcodeMeta
	}
	return TypeNameGeneral
}
