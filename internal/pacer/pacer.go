package pacer

import (
	"context"
	"time"
)

// Pacer spaces out consecutive calls to an upstream provider.
// Wait blocks for the configured delay, or returns early with the
// context's error if the run is cancelled mid-wait.
type Pacer interface {
	Wait(ctx context.Context) error
}

type fixedDelayPacer struct {
	delay time.Duration
}

func NewFixedDelay(delay time.Duration) Pacer {
	return fixedDelayPacer{delay: delay}
}

func (p fixedDelayPacer) Wait(ctx context.Context) error {
	t := time.NewTimer(p.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type noDelayPacer struct{}

// NoDelay is for tests that should not sleep.
func NoDelay() Pacer {
	return noDelayPacer{}
}

func (noDelayPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
