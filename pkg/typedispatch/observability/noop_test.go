package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetricsDoesNothing(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordLookup(ctx, "processor", LookupExact)
		m.RecordBind(ctx, "processor", 1)
		m.RecordRelease(ctx, "provider", 1)
		m.RecordProcess(ctx, time.Millisecond, nil)
		m.RecordInvoke(ctx, time.Millisecond, errors.New("ignored"))
	})
}

func TestNoopSpanManagerReturnsContextUnchanged(t *testing.T) {
	m := NoopSpanManager{}
	ctx := context.Background()

	gotCtx, span := m.StartProcessSpan(ctx, "int")
	assert.Equal(t, ctx, gotCtx)
	assert.NotNil(t, span)

	gotCtx, span = m.StartInvokeSpan(ctx, "func()")
	assert.Equal(t, ctx, gotCtx)

	assert.NotPanics(t, func() {
		m.EndSpanWithError(span, errors.New("ignored"))
	})
}
