package execctx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/viant/rewrite/execctx"
)

func TestBase_Messages(t *testing.T) {
	ctx := execctx.New()

	_, ok := ctx.Message("k")
	assert.False(t, ok)

	ctx.PutMessage("k", 42)
	v, ok := ctx.Message("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestBase_OnErrorAndOnTimeout(t *testing.T) {
	var errs []error
	var timeouts []error

	ctx := execctx.New(
		execctx.WithOnError(func(err error) { errs = append(errs, err) }),
		execctx.WithOnTimeout(func(err error) { timeouts = append(timeouts, err) }),
	)

	ctx.OnError(nil)
	assert.Empty(t, errs)

	boom := errors.New("boom")
	ctx.OnError(boom)
	assert.Equal(t, []error{boom}, errs)

	ctx.OnTimeout(boom)
	assert.Equal(t, []error{boom}, timeouts)
}

func TestBase_RunTimeoutDefault(t *testing.T) {
	ctx := execctx.New()
	assert.Greater(t, ctx.RunTimeout(10), time.Hour)
}

func TestBase_RunTimeoutConfigured(t *testing.T) {
	ctx := execctx.New(execctx.WithRunTimeout(func(n int) time.Duration {
		return time.Duration(n) * time.Second
	}))
	assert.Equal(t, 5*time.Second, ctx.RunTimeout(5))
}

func TestBase_Panic(t *testing.T) {
	ctx := execctx.New()
	assert.False(t, ctx.Panicked())
	ctx.Panic()
	assert.True(t, ctx.Panicked())
}
