package steps

import (
	"fmt"
	"path"

	"github.com/apex/log"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
)

// ComputeBlacklists represents the exclusion set computation step. Both
// blacklists are fully built before any filesystem write: a malformed
// condition aborts the run with no partial blacklist applied.
type ComputeBlacklists struct{}

// Run evaluates directory and file inclusion rules against the context.
// A rule whose condition is false puts its paths on a blacklist:
// directories exclude by path-segment prefix, files by exact path.
func (ComputeBlacklists) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	data := runCtx.Context.Data()

	for _, rule := range runCtx.Bundle.Spec.IncludeDirectories {
		included, err := runCtx.Engine.EvaluateCondition(rule.Condition, data)
		if err != nil {
			return fmt.Errorf("directory inclusion rule: %s", err)
		}
		if included {
			continue
		}
		for _, relPath := range rule.Paths {
			cleaned := path.Clean(relPath)
			log.Debugf("Excluding directory %s", cleaned)
			runCtx.DirBlacklist = append(runCtx.DirBlacklist, cleaned)
		}
	}

	for _, rule := range runCtx.Bundle.Spec.IncludeFiles {
		included, err := runCtx.Engine.EvaluateCondition(rule.Condition, data)
		if err != nil {
			return fmt.Errorf("file inclusion rule: %s", err)
		}
		if included {
			continue
		}
		for _, relPath := range rule.Paths {
			cleaned := path.Clean(relPath)
			log.Debugf("Excluding file %s", cleaned)
			runCtx.FileBlacklist[cleaned] = true
		}
	}

	return nil
}
