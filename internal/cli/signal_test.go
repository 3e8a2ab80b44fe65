package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifyShutdownSignals_StopCancelsContext(t *testing.T) {
	ctx, stop := notifyShutdownSignals(context.Background())
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("context canceled before stop was called")
	default:
	}

	stop()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestRestoringStop_CallsUnderlyingStop(t *testing.T) {
	called := false
	stop := restoringStop(func() { called = true })
	stop()
	require.True(t, called)
}
