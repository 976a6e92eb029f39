package steps

import (
	"fmt"
	"os"
	"sort"

	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/util"
)

// LoadParamsFile represents the parameters file load step. Values from the
// file are applied before CLI overrides, so CLI wins.
type LoadParamsFile struct{}

// Run loads parameter values from a YAML map file.
func (LoadParamsFile) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	if ctx.ParamsFile == "" { // Skip if no file specified.
		return nil
	}

	if _, err := os.Stat(ctx.ParamsFile); err != nil {
		return fmt.Errorf("params file loading error: %s", err)
	}

	rawParams, err := util.ParseYAML(ctx.ParamsFile)
	if err != nil {
		return fmt.Errorf("params file loading error: %s", err)
	}

	paramIDs := make([]string, 0, len(rawParams))
	for paramID := range rawParams {
		paramIDs = append(paramIDs, paramID)
	}
	sort.Strings(paramIDs)

	for _, paramID := range paramIDs {
		raw := stringifyParamValue(rawParams[paramID])
		log.Debugf("Setting parameter from params file: %s = %s", paramID, raw)
		if err := setParam(runCtx, paramID, raw); err != nil {
			return fmt.Errorf("failed to load params from %s: %s",
				ctx.ParamsFile, err)
		}
	}

	return nil
}

func stringifyParamValue(raw interface{}) string {
	switch typed := raw.(type) {
	case string:
		return typed
	case bool:
		if typed {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%v", raw)
}
