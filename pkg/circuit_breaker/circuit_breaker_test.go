package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bookhive/bookreview-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("publish error") }

	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.5, 2)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}

	// trip the breaker: over half the window fails
	for i := 0; i < 10; i++ {
		_ = cb.Call(fail)
	}
	err := cb.Call(ok)
	require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)

	// after the timeout a probe goes through and successes close it again
	time.Sleep(60 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.NoError(t, cb.Call(ok))
}

func Test_circuitBreaker_Reset(t *testing.T) {
	fail := func() error { return errors.New("publish error") }

	cb := circuit_breaker.New(4, time.Minute, 0.5, 1)
	for i := 0; i < 4; i++ {
		_ = cb.Call(fail)
	}
	require.ErrorIs(t, cb.Call(fail), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.NoError(t, cb.Call(func() error { return nil }))
}
