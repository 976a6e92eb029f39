package steps

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader feeds pre-recorded input lines to the collection step.
type scriptedReader struct {
	lines []string
}

func (reader *scriptedReader) readLine() (string, error) {
	if len(reader.lines) == 0 {
		return "", io.EOF
	}
	line := reader.lines[0]
	reader.lines = reader.lines[1:]
	return line, nil
}

func TestCollectParamsFromUser(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.SilentMode = false
	collect := CollectParamsFromUser{
		Reader: &scriptedReader{lines: []string{"Acme", "false", "Linux"}},
	}

	require.NoError(t, collect.Run(ctx, &runCtx))

	assert.Equal(t, "Acme", runCtx.Param("LIB_NAME").CurrentString)
	assert.False(t, runCtx.Param("INCLUDE_TESTS").CurrentBool)
	assert.Equal(t, 2, runCtx.Param("PLATFORM").CurrentOption)
}

func TestCollectParamsFromUserKeepsDefaults(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.SilentMode = false
	collect := CollectParamsFromUser{
		Reader: &scriptedReader{lines: []string{"Acme", "", ""}},
	}

	require.NoError(t, collect.Run(ctx, &runCtx))

	assert.True(t, runCtx.Param("INCLUDE_TESTS").CurrentBool)
	assert.Equal(t, 0, runCtx.Param("PLATFORM").CurrentOption)
	assert.False(t, runCtx.SetParams["INCLUDE_TESTS"])
}

func TestCollectParamsFromUserRepromptsOnInvalidInput(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.SilentMode = false
	collect := CollectParamsFromUser{
		Reader: &scriptedReader{lines: []string{"9bad", "Acme", "", ""}},
	}

	require.NoError(t, collect.Run(ctx, &runCtx))
	assert.Equal(t, "Acme", runCtx.Param("LIB_NAME").CurrentString)
}

func TestCollectParamsFromUserSkipsSetParams(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.SilentMode = false
	ctx.ParamsFromCli = []string{"LIB_NAME=Preset"}
	require.NoError(t, FillParamsFromCli{}.Run(ctx, &runCtx))

	collect := CollectParamsFromUser{
		Reader: &scriptedReader{lines: []string{"", ""}},
	}
	require.NoError(t, collect.Run(ctx, &runCtx))

	assert.Equal(t, "Preset", runCtx.Param("LIB_NAME").CurrentString)
}

func TestCollectParamsFromUserSilentMode(t *testing.T) {
	ctx, runCtx := loadTestBundle(t)
	ctx.SilentMode = true

	// No reader at all: silent mode must not prompt.
	require.NoError(t, CollectParamsFromUser{}.Run(ctx, &runCtx))
	assert.Empty(t, runCtx.SetParams)
}
