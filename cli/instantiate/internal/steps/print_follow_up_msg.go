package steps

import (
	"fmt"
	"io"

	instantiate_ctx "github.com/bootstrapp/bootstrapp/cli/instantiate/context"
	"github.com/bootstrapp/bootstrapp/cli/instantiate/internal/bundle"
)

// PrintFollowUpMessage represents the follow-up message print step.
type PrintFollowUpMessage struct {
	// Writer is used to write the follow-up message.
	Writer io.Writer
}

// Run prints the template follow-up message, if the specification has one.
func (printStep PrintFollowUpMessage) Run(ctx *instantiate_ctx.InstantiateCtx,
	runCtx *bundle.RunCtx,
) error {
	message := runCtx.Bundle.Spec.FollowUpMessage
	if message == "" || ctx.SilentMode {
		return nil
	}

	followUpText, err := runCtx.Engine.RenderText(message, runCtx.Context.Data())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(printStep.Writer, followUpText)
	return err
}
