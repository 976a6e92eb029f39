// Package steps provides a set of handlers for the instantiate command
// chain of responsibility.
package steps

import (
	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
)

// Step is an interface for a single step in the instantiation chain.
type Step interface {
	Run(ctx *instantiate_ctx.InstantiateCtx, runCtx *bundle.RunCtx) error
}
