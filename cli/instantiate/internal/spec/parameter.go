package spec

// ParamType is a parameter value type tag.
type ParamType string

const (
	// ParamTypeString is a free-form string parameter.
	ParamTypeString ParamType = "String"
	// ParamTypeBool is a boolean parameter.
	ParamTypeBool ParamType = "Bool"
	// ParamTypeOption is a single-select parameter over a fixed options list.
	ParamTypeOption ParamType = "Option"
)

// Parameter is a typed template parameter. Exactly one of the typed value
// slots is meaningful, selected by Type; the others stay zero-valued.
// Parameter values are never mutated in place: With* methods return a copy,
// so a specification's original parameter list stays replayable.
type Parameter struct {
	// Name is a human-readable parameter name.
	Name string
	// ID is the unique key of the parameter in the rendering context.
	ID string
	// Type selects the meaningful value slot.
	Type ParamType
	// ValidationRe is a regular expression for string value validation.
	ValidationRe string
	// Options is the list of selectable values for ParamTypeOption.
	Options []string
	// DependsOn is an id of a parameter that must be truthy for this
	// parameter to be relevant. Not enforced here.
	DependsOn string

	// DefaultString is a default value for ParamTypeString.
	DefaultString string
	// DefaultBool is a default value for ParamTypeBool.
	DefaultBool bool
	// DefaultOption is a default options index for ParamTypeOption.
	DefaultOption int

	// CurrentString is the effective value for ParamTypeString.
	CurrentString string
	// CurrentBool is the effective value for ParamTypeBool.
	CurrentBool bool
	// CurrentOption is the effective options index for ParamTypeOption.
	// Invariant: 0 <= CurrentOption < len(Options) for a decoded parameter.
	CurrentOption int
}

// WithStringValue returns a copy of the parameter with the string slot
// replaced. The value is not validated against ValidationRe here.
func (p Parameter) WithStringValue(value string) Parameter {
	p.CurrentString = value
	return p
}

// WithBoolValue returns a copy of the parameter with the bool slot replaced.
func (p Parameter) WithBoolValue(value bool) Parameter {
	p.CurrentBool = value
	return p
}

// WithOptionIndex returns a copy of the parameter with the option index
// replaced. Bounds are not checked here.
func (p Parameter) WithOptionIndex(index int) Parameter {
	p.CurrentOption = index
	return p
}

// ResolvedValue returns the value this parameter contributes to the
// rendering context under its ID. An empty string resolves to an absent
// value, not an empty string.
func (p Parameter) ResolvedValue() Value {
	switch p.Type {
	case ParamTypeString:
		if p.CurrentString == "" {
			return AbsentValue()
		}
		return StringValue(p.CurrentString)
	case ParamTypeBool:
		return BoolValue(p.CurrentBool)
	case ParamTypeOption:
		if p.CurrentOption < 0 || p.CurrentOption >= len(p.Options) {
			return AbsentValue()
		}
		return StringValue(p.Options[p.CurrentOption])
	}
	return AbsentValue()
}
