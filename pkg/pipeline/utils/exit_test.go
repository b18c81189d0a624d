package utils

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_SetupElegantExit(t *testing.T) {
	SetupElegantExit()
	require.Equal(t, 0, len(registeredChannels))

	ch1 := make(chan struct{})
	ch2 := make(chan struct{})
	RegisterExitChannel(ch1)
	require.Equal(t, 1, len(registeredChannels))
	RegisterExitChannel(ch2)
	require.Equal(t, 2, len(registeredChannels))
	ctx, cancel := ExitContext(context.Background())
	defer cancel()
	require.Equal(t, 3, len(registeredChannels))

	select {
	case <-ch1:
		require.Fail(t, "channel should have been empty")
	case <-ctx.Done():
		require.Fail(t, "context should not be cancelled yet")
	default:
	}

	// send signal and see that it is propagated
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	for _, done := range []<-chan struct{}{ch1, ch2, ctx.Done()} {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			require.Fail(t, "exit signal was not propagated")
		}
	}
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func Test_ExitContextCancelledByParent(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := ExitContext(parent)
	defer cancel()
	cancelParent()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		require.Fail(t, "context should follow its parent")
	}
}
