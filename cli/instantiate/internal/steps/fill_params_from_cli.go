package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
)

const paramFormatError = `wrong parameter definition format: %s
Usage: --param "PARAM_ID=value"`

// FillParamsFromCli represents a step for collecting parameter values
// passed using command line args.
type FillParamsFromCli struct{}

// Run applies command line parameter overrides to the working parameter
// list.
func (FillParamsFromCli) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	for _, paramDefinition := range ctx.ParamsFromCli {
		paramDefinition = strings.TrimSpace(paramDefinition)
		paramID, value, found := strings.Cut(paramDefinition, "=")
		if !found || paramID == "" {
			return fmt.Errorf(paramFormatError, paramDefinition)
		}
		log.Debugf("Setting parameter from CLI: %s = %s", paramID, value)
		if err := setParam(runCtx, paramID, value); err != nil {
			return err
		}
	}
	return nil
}

// setParam replaces the working copy of the parameter with a value copy
// holding the parsed raw value.
func setParam(runCtx *bundle.RunCtx, paramID, raw string) error {
	param := runCtx.Param(paramID)
	if param == nil {
		return fmt.Errorf("%q: %w", paramID, spec.ErrUnknownParameter)
	}
	updated, err := param.ApplyRawValue(raw)
	if err != nil {
		return err
	}
	*param = updated
	runCtx.SetParams[paramID] = true
	return nil
}
