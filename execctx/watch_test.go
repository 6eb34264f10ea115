package execctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/rewrite/execctx"
)

func TestWatch_TracksNewMessages(t *testing.T) {
	base := execctx.New()
	w := execctx.NewWatch(base)

	assert.False(t, w.HasNewMessages())

	w.PutMessage("k", "v")
	assert.True(t, w.HasNewMessages())

	w.ResetHasNewMessages()
	assert.False(t, w.HasNewMessages())
}

func TestWatch_ForwardsToUnderlyingContext(t *testing.T) {
	base := execctx.New()
	w := execctx.NewWatch(base)

	w.PutMessage("k", "v")
	v, ok := w.Message("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	assert.False(t, w.Panicked())
	w.Panic()
	assert.True(t, w.Panicked())
	assert.True(t, base.Panicked())
}
