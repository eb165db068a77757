package pacer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixedDelay(t *testing.T) {
	p := NewFixedDelay(20 * time.Millisecond)

	start := time.Now()
	err := p.Wait(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedDelayCancelled(t *testing.T) {
	p := NewFixedDelay(10 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := p.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}
