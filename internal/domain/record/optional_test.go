package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	v, ok := None[string]().Get()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	v, ok = Some("").Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)

	assert.False(t, FromPtr[string](nil).IsSet())
	s := "x"
	v, ok = FromPtr(&s).Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Notes: Some("")}.IsEmpty())
}
