package steps

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("writer is closed")
}

func TestPrintFollowUpMessage(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.Clock = func() time.Time { return fixedTime }
	ctx.SilentMode = false
	ctx.ParamsFromCli = []string{"LIB_NAME=Acme"}

	require.NoError(t, FillParamsFromCli{}.Run(ctx, &runCtx))
	require.NoError(t, BuildContext{}.Run(ctx, &runCtx))

	var buffer bytes.Buffer
	require.NoError(t, PrintFollowUpMessage{Writer: &buffer}.Run(ctx, &runCtx))
	assert.Equal(t, "Library Acme is ready.\n", buffer.String())
}

func TestPrintFollowUpMessageWriterError(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.Clock = func() time.Time { return fixedTime }
	ctx.SilentMode = false
	ctx.ParamsFromCli = []string{"LIB_NAME=Acme"}

	require.NoError(t, FillParamsFromCli{}.Run(ctx, &runCtx))
	require.NoError(t, BuildContext{}.Run(ctx, &runCtx))

	err := PrintFollowUpMessage{Writer: brokenWriter{}}.Run(ctx, &runCtx)
	require.ErrorContains(t, err, "writer is closed")
}

func TestPrintFollowUpMessageSilent(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.SilentMode = true

	// Silent mode never writes, so even a broken writer is fine.
	require.NoError(t, PrintFollowUpMessage{Writer: brokenWriter{}}.Run(ctx, &runCtx))
}
