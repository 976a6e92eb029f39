package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextSetGet(t *testing.T) {
	ctx := NewContext()
	ctx.Set("NAME", StringValue("Acme"))
	ctx.Set("FLAG", BoolValue(true))

	assert.Equal(t, "Acme", ctx.Get("NAME").Interface())
	assert.Equal(t, true, ctx.Get("FLAG").Interface())
	assert.True(t, ctx.Get("MISSING").IsAbsent())
	assert.Nil(t, ctx.Get("MISSING").Interface())
}

func TestContextLaterSetWins(t *testing.T) {
	ctx := NewContext()
	ctx.Set("X", StringValue("a"))
	ctx.Set("X", StringValue("b"))

	assert.Equal(t, "b", ctx.Get("X").Interface())
	assert.Equal(t, []string{"X"}, ctx.Keys())
}

func TestContextSetAbsentRemovesKey(t *testing.T) {
	ctx := NewContext()
	ctx.Set("X", StringValue("a"))
	ctx.Set("Y", StringValue("b"))
	ctx.Set("X", AbsentValue())

	assert.True(t, ctx.Get("X").IsAbsent())
	assert.Equal(t, []string{"Y"}, ctx.Keys())
	_, found := ctx.Data()["X"]
	assert.False(t, found)
}

func TestContextKeysInsertionOrder(t *testing.T) {
	ctx := NewContext()
	ctx.Set("C", StringValue("3"))
	ctx.Set("A", StringValue("1"))
	ctx.Set("B", StringValue("2"))
	ctx.Set("A", StringValue("updated"))

	assert.Equal(t, []string{"C", "A", "B"}, ctx.Keys())
}

func TestContextData(t *testing.T) {
	ctx := NewContext()
	ctx.Set("NAME", StringValue("Acme"))
	ctx.Set("FLAG", BoolValue(false))

	assert.Equal(t, map[string]interface{}{
		"NAME": "Acme",
		"FLAG": false,
	}, ctx.Data())
}
