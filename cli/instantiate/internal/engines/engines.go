// Package engines defines the template rendering and condition evaluation
// collaborators consumed by the instantiation pipeline.
package engines

// TemplateEngine renders template expressions and evaluates inclusion
// conditions against a rendering context given as a plain key-value map.
type TemplateEngine interface {
	// RenderText renders template expressions embedded in text. A
	// reference to a key missing from data is an error.
	RenderText(text string, data map[string]interface{}) (string, error)
	// RenderFile renders the content of srcPath to dstPath preserving
	// the file mode.
	RenderFile(srcPath, dstPath string, data map[string]interface{}) error
	// EvaluateCondition evaluates a boolean expression. A reference to a
	// key missing from data is not an error: missing keys are falsy.
	EvaluateCondition(condition string, data map[string]interface{}) (bool, error)
}

// NewDefaultEngine returns the default Go text/template based engine.
func NewDefaultEngine() TemplateEngine {
	return GoTextEngine{}
}
