package spec

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/bootstrapp/bootstrapp/cli/util"
	"github.com/bootstrapp/bootstrapp/cli/util/regexputil"
	"github.com/bootstrapp/bootstrapp/cli/version"
)

const (
	// SpecFileName is the name of the specification document inside a
	// template bundle.
	SpecFileName = "Bootstrapp.json"

	// SupportedSpecVersion is the highest specification version this
	// version of the tool can instantiate.
	SupportedSpecVersion = "1.0"
)

// IncludeRule is a conditional inclusion rule: when Condition evaluates to
// false, every path in Paths is excluded from instantiation.
type IncludeRule struct {
	// Condition is an expression evaluated against the rendering context.
	Condition string
	// Paths are relative paths inside the bundle content tree.
	Paths []string
}

// Specification is a decoded template bundle configuration. It is loaded
// once per instantiation run and immutable afterwards.
type Specification struct {
	// ID is the template identifier.
	ID string
	// SpecificationVersion is the specification format version.
	SpecificationVersion string
	// TemplateVersion is the template content version.
	TemplateVersion string
	// ProjectType is the produced project kind.
	ProjectType ProjectType
	// Description is a human-readable template description.
	Description string
	// OutputDirectoryName is an expression producing the output
	// directory name.
	OutputDirectoryName string
	// Substitutions are static context values, overridable by parameters.
	Substitutions map[string]string
	// Parameters are the template parameters in declaration order.
	Parameters []Parameter
	// ParametrizableFiles are whole-filename patterns of files whose
	// content is rendered rather than copied.
	ParametrizableFiles []string
	// IncludeDirectories are conditional directory inclusion rules.
	IncludeDirectories []IncludeRule
	// IncludeFiles are conditional file inclusion rules.
	IncludeFiles []IncludeRule
	// Packages are package manager dependencies carried through.
	Packages []PackageRef
	// FollowUpMessage is an optional message template printed after a
	// successful instantiation.
	FollowUpMessage string

	parametrizablePatterns []*regexp.Regexp
}

type paramDocument struct {
	Name            string      `mapstructure:"name"`
	ID              string      `mapstructure:"id"`
	Type            string      `mapstructure:"type"`
	ValidationRegex string      `mapstructure:"validationRegex"`
	Default         interface{} `mapstructure:"default"`
	Options         []string    `mapstructure:"options"`
	Value           interface{} `mapstructure:"value"`
	DependsOn       string      `mapstructure:"dependsOn"`
}

type includeRuleDocument struct {
	If          string   `mapstructure:"if"`
	Directories []string `mapstructure:"directories"`
	Files       []string `mapstructure:"files"`
}

type packageDocument struct {
	Name              string `mapstructure:"name"`
	URL               string `mapstructure:"url"`
	VersionConstraint string `mapstructure:"versionConstraint"`
}

type specDocument struct {
	ID                   string                `mapstructure:"id"`
	SpecificationVersion string                `mapstructure:"specificationVersion"`
	TemplateVersion      string                `mapstructure:"templateVersion"`
	Type                 string                `mapstructure:"type"`
	Description          string                `mapstructure:"description"`
	OutputDirectoryName  string                `mapstructure:"outputDirectoryName"`
	Substitutions        map[string]string     `mapstructure:"substitutions"`
	Parameters           []paramDocument       `mapstructure:"parameters"`
	ParametrizableFiles  []string              `mapstructure:"parametrizableFiles"`
	IncludeDirectories   []includeRuleDocument `mapstructure:"includeDirectories"`
	IncludeFiles         []includeRuleDocument `mapstructure:"includeFiles"`
	Packages             []packageDocument     `mapstructure:"packages"`
	ProjectSpecification string                `mapstructure:"projectSpecification"`
	FollowUpMessage      string                `mapstructure:"followUpMessage"`
}

// Load loads and decodes a specification document from specPath.
func Load(specPath string) (*Specification, error) {
	rawSpec, err := util.ParseJSON(specPath)
	if err != nil {
		return nil, err
	}

	var doc specDocument
	if err := mapstructure.Decode(rawSpec, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode specification: %s", err)
	}

	return decodeSpecification(&doc)
}

func decodeSpecification(doc *specDocument) (*Specification, error) {
	projectType, err := ParseProjectType(doc.Type, doc.ProjectSpecification)
	if err != nil {
		return nil, err
	}

	spec := Specification{
		ID:                   doc.ID,
		SpecificationVersion: doc.SpecificationVersion,
		TemplateVersion:      doc.TemplateVersion,
		ProjectType:          projectType,
		Description:          doc.Description,
		OutputDirectoryName:  doc.OutputDirectoryName,
		Substitutions:        doc.Substitutions,
		ParametrizableFiles:  doc.ParametrizableFiles,
		FollowUpMessage:      doc.FollowUpMessage,
	}
	if spec.Substitutions == nil {
		spec.Substitutions = map[string]string{}
	}

	for _, versionStr := range []string{doc.SpecificationVersion, doc.TemplateVersion} {
		if versionStr == "" {
			continue
		}
		if _, err := version.ParseComponents(versionStr); err != nil {
			return nil, err
		}
	}

	for _, pattern := range doc.ParametrizableFiles {
		re, err := regexputil.CompileAnchored(pattern)
		if err != nil {
			return nil, fmt.Errorf("parametrizable file pattern: %s", err)
		}
		spec.parametrizablePatterns = append(spec.parametrizablePatterns, re)
	}

	for _, paramDoc := range doc.Parameters {
		param, err := decodeParameter(&paramDoc)
		if err != nil {
			return nil, err
		}
		spec.Parameters = append(spec.Parameters, param)
	}

	for _, ruleDoc := range doc.IncludeDirectories {
		spec.IncludeDirectories = append(spec.IncludeDirectories, IncludeRule{
			Condition: ruleDoc.If,
			Paths:     ruleDoc.Directories,
		})
	}
	for _, ruleDoc := range doc.IncludeFiles {
		spec.IncludeFiles = append(spec.IncludeFiles, IncludeRule{
			Condition: ruleDoc.If,
			Paths:     ruleDoc.Files,
		})
	}

	for _, packageDoc := range doc.Packages {
		spec.Packages = append(spec.Packages, PackageRef{
			Name:              packageDoc.Name,
			URL:               packageDoc.URL,
			VersionConstraint: packageDoc.VersionConstraint,
		})
	}

	return &spec, nil
}

func decodeParameter(doc *paramDocument) (Parameter, error) {
	param := Parameter{
		Name:         doc.Name,
		ID:           doc.ID,
		ValidationRe: doc.ValidationRegex,
		Options:      doc.Options,
		DependsOn:    doc.DependsOn,
	}

	switch ParamType(doc.Type) {
	case ParamTypeString:
		param.Type = ParamTypeString
	case ParamTypeBool:
		param.Type = ParamTypeBool
	case ParamTypeOption:
		param.Type = ParamTypeOption
	default:
		return param, fmt.Errorf("parameter %q has malformed type tag %q",
			doc.ID, doc.Type)
	}

	defaultValue, err := decodeParamValue(param, doc.Default)
	if err != nil {
		return param, fmt.Errorf("parameter %q default: %s", doc.ID, err)
	}
	param = applyDefault(param, defaultValue)

	// "value" is a pre-set current value; it overrides the default.
	if doc.Value != nil {
		currentValue, err := decodeParamValue(param, doc.Value)
		if err != nil {
			return param, fmt.Errorf("parameter %q value: %s", doc.ID, err)
		}
		param = applyCurrent(param, currentValue)
	}

	if param.Type == ParamTypeOption {
		if param.CurrentOption < 0 || param.CurrentOption >= len(param.Options) {
			return param, fmt.Errorf("parameter %q: option index %d is out of range",
				doc.ID, param.CurrentOption)
		}
	}

	return param, nil
}

// decodedValue is a typed decoded parameter value.
type decodedValue struct {
	str         string
	boolean     bool
	optionIndex int
}

func decodeParamValue(param Parameter, raw interface{}) (decodedValue, error) {
	var value decodedValue
	if raw == nil {
		return value, nil
	}

	switch param.Type {
	case ParamTypeString:
		str, ok := raw.(string)
		if !ok {
			return value, fmt.Errorf("expected a string, got %v", raw)
		}
		value.str = str
	case ParamTypeBool:
		boolean, ok := raw.(bool)
		if !ok {
			return value, fmt.Errorf("expected a boolean, got %v", raw)
		}
		value.boolean = boolean
	case ParamTypeOption:
		switch typed := raw.(type) {
		case float64:
			value.optionIndex = int(typed)
		case int:
			value.optionIndex = typed
		case string:
			index, err := OptionIndex(param.Options, typed)
			if err != nil {
				return value, err
			}
			value.optionIndex = index
		default:
			return value, fmt.Errorf("expected an option index or name, got %v", raw)
		}
	}
	return value, nil
}

func applyDefault(param Parameter, value decodedValue) Parameter {
	switch param.Type {
	case ParamTypeString:
		param.DefaultString = value.str
		param.CurrentString = value.str
	case ParamTypeBool:
		param.DefaultBool = value.boolean
		param.CurrentBool = value.boolean
	case ParamTypeOption:
		param.DefaultOption = value.optionIndex
		param.CurrentOption = value.optionIndex
	}
	return param
}

func applyCurrent(param Parameter, value decodedValue) Parameter {
	switch param.Type {
	case ParamTypeString:
		return param.WithStringValue(value.str)
	case ParamTypeBool:
		return param.WithBoolValue(value.boolean)
	case ParamTypeOption:
		return param.WithOptionIndex(value.optionIndex)
	}
	return param
}

// OptionIndex resolves an option selection to an options list index. The
// selection is either an exact option string or a decimal index.
func OptionIndex(options []string, selection string) (int, error) {
	for i, option := range options {
		if option == selection {
			return i, nil
		}
	}
	if index, err := strconv.Atoi(selection); err == nil {
		if index >= 0 && index < len(options) {
			return index, nil
		}
		return 0, fmt.Errorf("option index %d is out of range", index)
	}
	return 0, fmt.Errorf("%q is not one of the options", selection)
}

// IsFileParametrizable reports whether a file with the given base name
// should have its content rendered instead of copied verbatim.
func (s *Specification) IsFileParametrizable(fileName string) bool {
	return regexputil.MatchesAny(s.parametrizablePatterns, fileName)
}

// ApplyRawValue returns a copy of param with the raw string value parsed
// according to the parameter type and validated.
func (p Parameter) ApplyRawValue(raw string) (Parameter, error) {
	switch p.Type {
	case ParamTypeString:
		if p.ValidationRe != "" {
			// The whole value must match, not a substring of it.
			re, err := regexputil.CompileAnchored(p.ValidationRe)
			if err != nil {
				return p, fmt.Errorf("failed to validate value: %s", err)
			}
			if !re.MatchString(raw) {
				return p, &ValidationError{ParamID: p.ID,
					Reason: fmt.Sprintf("%q does not match %q", raw, p.ValidationRe)}
			}
		}
		return p.WithStringValue(raw), nil
	case ParamTypeBool:
		boolean, err := strconv.ParseBool(raw)
		if err != nil {
			return p, &ValidationError{ParamID: p.ID,
				Reason: fmt.Sprintf("%q is not a boolean", raw)}
		}
		return p.WithBoolValue(boolean), nil
	case ParamTypeOption:
		index, err := OptionIndex(p.Options, raw)
		if err != nil {
			return p, &ValidationError{ParamID: p.ID, Reason: err.Error()}
		}
		return p.WithOptionIndex(index), nil
	}
	return p, &ValidationError{ParamID: p.ID, Reason: "malformed parameter type"}
}

// CheckCompatibility checks that the specification version is supported.
func (s *Specification) CheckCompatibility() error {
	if s.SpecificationVersion == "" {
		return nil
	}
	cmp, err := version.Compare(s.SpecificationVersion, SupportedSpecVersion)
	if err != nil {
		return err
	}
	if cmp > 0 {
		return fmt.Errorf("specification version %s is newer than supported %s",
			s.SpecificationVersion, SupportedSpecVersion)
	}
	return nil
}
