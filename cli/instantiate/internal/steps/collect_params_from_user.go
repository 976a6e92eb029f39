package steps

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
)

// Reader interface is used for reading user input.
type Reader interface {
	readLine() (string, error)
}

// consoleReader implements reading from console.
type consoleReader struct {
	stdinReader *bufio.Reader
}

// readLine reads line from console. New-line symbol is trimmed.
func (consoleReader consoleReader) readLine() (string, error) {
	input, err := consoleReader.stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSuffix(input, "\n"), nil
}

// NewConsoleReader creates new console reader.
func NewConsoleReader() consoleReader {
	return consoleReader{bufio.NewReader(os.Stdin)}
}

// CollectParamsFromUser represents a step that requests values for
// parameters the caller did not set.
type CollectParamsFromUser struct {
	// Reader is used to get user input.
	Reader Reader
}

// Run prompts for parameter values in interactive mode. In silent mode
// defaults are used as-is: a string parameter without a default stays
// absent and surfaces later only if an expression references it.
func (collect CollectParamsFromUser) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	if ctx.SilentMode {
		return nil
	}

	for i := range runCtx.Parameters {
		param := runCtx.Parameters[i]
		if runCtx.SetParams[param.ID] {
			continue
		}
		if !dependencySatisfied(runCtx, param) {
			continue
		}

		for {
			input, err := collect.prompt(param)
			if err != nil {
				return err
			}
			if input == "" {
				// Keep the default.
				break
			}
			updated, err := param.ApplyRawValue(input)
			if err != nil {
				fmt.Printf("Invalid value: %s. Try again.\n", err)
				continue
			}
			runCtx.Parameters[i] = updated
			runCtx.SetParams[param.ID] = true
			break
		}
	}

	return nil
}

func (collect CollectParamsFromUser) prompt(param spec.Parameter) (string, error) {
	switch param.Type {
	case spec.ParamTypeBool:
		fmt.Printf("%s (default: %t): ", param.Name, param.CurrentBool)
	case spec.ParamTypeOption:
		fmt.Printf("%s %v (default: %s): ", param.Name, param.Options,
			param.Options[param.CurrentOption])
	default:
		if param.CurrentString == "" {
			fmt.Printf("%s: ", param.Name)
		} else {
			fmt.Printf("%s (default: %s): ", param.Name, param.CurrentString)
		}
	}
	return collect.Reader.readLine()
}

// dependencySatisfied reports whether the parameter's dependsOn parameter,
// if any, currently resolves to a truthy value. Parameters with an
// unsatisfied dependency are not collected.
func dependencySatisfied(runCtx *bundle.RunCtx, param spec.Parameter) bool {
	if param.DependsOn == "" {
		return true
	}
	dependency := runCtx.Param(param.DependsOn)
	if dependency == nil {
		return false
	}
	resolved := dependency.ResolvedValue()
	if resolved.IsAbsent() {
		return false
	}
	switch value := resolved.Interface().(type) {
	case bool:
		return value
	case string:
		return value != ""
	}
	return false
}
