package steps

import (
	"sort"
	"strings"
	"time"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/spec"
)

// Built-in context keys seeded before substitutions and parameters.
const (
	ContextKeyTime            = "TIME"
	ContextKeyDateTime        = "DATETIME"
	ContextKeyDate            = "DATE"
	ContextKeyYear            = "YEAR"
	ContextKeyTemplateVersion = "TEMPLATE_VERSION"
	// ContextKeyPackages carries the merged package list, one
	// name=url[@constraint] definition per line. Templates render it and
	// the project generator receives it through its environment.
	ContextKeyPackages = "PACKAGES"
)

// BuildContext represents the rendering context construction step.
// Precedence, later wins: built-ins, specification substitutions, caller
// parameter values.
type BuildContext struct{}

// Run builds the rendering context for the run.
func (BuildContext) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	now := time.Now()
	if ctx.Clock != nil {
		now = ctx.Clock()
	}
	runCtx.Now = now

	runCtx.Context.Set(ContextKeyTime, spec.StringValue(now.Format("15:04:05")))
	runCtx.Context.Set(ContextKeyDateTime, spec.StringValue(now.Format(time.RFC3339)))
	runCtx.Context.Set(ContextKeyDate, spec.StringValue(now.Format("2006-01-02")))
	runCtx.Context.Set(ContextKeyYear, spec.StringValue(now.Format("2006")))
	runCtx.Context.Set(ContextKeyTemplateVersion,
		spec.StringValue(runCtx.Bundle.Spec.TemplateVersion))

	if len(runCtx.Packages) > 0 {
		definitions := make([]string, 0, len(runCtx.Packages))
		for _, ref := range runCtx.Packages {
			definitions = append(definitions, ref.String())
		}
		runCtx.Context.Set(ContextKeyPackages,
			spec.StringValue(strings.Join(definitions, "\n")))
	}

	substitutions := runCtx.Bundle.Spec.Substitutions
	substitutionKeys := make([]string, 0, len(substitutions))
	for key := range substitutions {
		substitutionKeys = append(substitutionKeys, key)
	}
	sort.Strings(substitutionKeys)
	for _, key := range substitutionKeys {
		runCtx.Context.Set(key, spec.StringValue(substitutions[key]))
	}

	// A parameter resolving to an absent value is skipped: its key is
	// not inserted, it never shadows an earlier layer with nil.
	for _, param := range runCtx.Parameters {
		if resolved := param.ResolvedValue(); !resolved.IsAbsent() {
			runCtx.Context.Set(param.ID, resolved)
		}
	}

	return nil
}
