package engines

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"text/template/parse"
)

// GoTextEngine renders templates and conditions using Go text/template.
type GoTextEngine struct{}

// RenderText renders template expressions in text using go text/template.
func (GoTextEngine) RenderText(text string, data map[string]interface{}) (string, error) {
	parsedTemplate, err := template.New("text").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %s", text, err)
	}
	parsedTemplate.Option("missingkey=error") // Treat missing variable as error.

	var buffer bytes.Buffer
	if err = parsedTemplate.Execute(&buffer, data); err != nil {
		return "", fmt.Errorf("template execution failed: %s", err)
	}

	return buffer.String(), nil
}

// RenderFile renders srcPath template content to dstPath using go
// text/template engine. The destination file gets the source file mode.
func (engine GoTextEngine) RenderFile(srcPath, dstPath string,
	data map[string]interface{},
) error {
	stat, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("error getting file info %s: %s", srcPath, err)
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %s", srcPath, err)
	}

	rendered, err := engine.RenderText(string(content), data)
	if err != nil {
		return fmt.Errorf("error rendering %s: %s", srcPath, err)
	}

	if err = os.WriteFile(dstPath, []byte(rendered), stat.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing %s: %s", dstPath, err)
	}
	return nil
}

// EvaluateCondition evaluates a boolean expression against data. The
// expression body is a text/template pipeline, e.g. "INCLUDE_TESTS" or
// `eq .PLATFORM "iOS"`. Missing keys evaluate as falsy, never as an error.
func (GoTextEngine) EvaluateCondition(condition string,
	data map[string]interface{},
) (bool, error) {
	expr := strings.TrimSpace(condition)
	if expr == "" {
		return true, nil
	}

	// Bare identifiers reference context keys.
	if !strings.HasPrefix(expr, ".") && isIdentifier(expr) {
		expr = "." + expr
	}

	conditionTemplate := fmt.Sprintf("{{if %s}}true{{else}}false{{end}}", expr)
	parsedTemplate, err := template.New("condition").Parse(conditionTemplate)
	if err != nil {
		return false, fmt.Errorf("malformed condition %q: %s", condition, err)
	}

	// A condition referencing an absent parameter must evaluate as falsy
	// (or as a non-match for equality checks), never fail. Default every
	// referenced key missing from data to an empty string.
	conditionData := make(map[string]interface{}, len(data))
	for key, value := range data {
		conditionData[key] = value
	}
	for _, key := range referencedKeys(parsedTemplate.Root) {
		if _, found := conditionData[key]; !found {
			conditionData[key] = ""
		}
	}

	var buffer bytes.Buffer
	if err = parsedTemplate.Execute(&buffer, conditionData); err != nil {
		return false, fmt.Errorf("condition evaluation failed for %q: %s",
			condition, err)
	}

	return buffer.String() == "true", nil
}

// referencedKeys returns top-level context keys referenced by the parsed
// condition, e.g. "PLATFORM" for `eq .PLATFORM "iOS"`.
func referencedKeys(node parse.Node) []string {
	var keys []string
	switch typed := node.(type) {
	case *parse.ListNode:
		if typed != nil {
			for _, child := range typed.Nodes {
				keys = append(keys, referencedKeys(child)...)
			}
		}
	case *parse.IfNode:
		keys = append(keys, referencedKeys(typed.Pipe)...)
		keys = append(keys, referencedKeys(typed.List)...)
		if typed.ElseList != nil {
			keys = append(keys, referencedKeys(typed.ElseList)...)
		}
	case *parse.ActionNode:
		keys = append(keys, referencedKeys(typed.Pipe)...)
	case *parse.PipeNode:
		if typed != nil {
			for _, cmd := range typed.Cmds {
				keys = append(keys, referencedKeys(cmd)...)
			}
		}
	case *parse.CommandNode:
		for _, arg := range typed.Args {
			keys = append(keys, referencedKeys(arg)...)
		}
	case *parse.FieldNode:
		if len(typed.Ident) > 0 {
			keys = append(keys, typed.Ident[0])
		}
	case *parse.ChainNode:
		if len(typed.Field) > 0 {
			if _, isDot := typed.Node.(*parse.DotNode); isDot {
				keys = append(keys, typed.Field[0])
			}
		}
	}
	return keys
}

func isIdentifier(str string) bool {
	for _, r := range str {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9') {
			return false
		}
	}
	return len(str) > 0
}
