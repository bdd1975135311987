package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/bookreview-service/internal/handler"
)

// A consumer-group rebalance ends the session and starts a new one, so
// Setup/Cleanup run once per session for the lifetime of the process.
func TestConsumer_Rebalance(t *testing.T) {
	t.Parallel()
	consumer := handler.NewConsumer(nil, zap.NewNop())

	for i := 0; i < 3; i++ {
		require.NotPanics(t, func() {
			require.NoError(t, consumer.Setup(nil))
			require.NoError(t, consumer.Cleanup(nil))
		})
	}
}
