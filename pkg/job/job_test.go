package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerStopWaitsForStartedJobs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int64

	r := NewRunner().Register("counter", time.Hour, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	r.Start(ctx)
	cancel()
	r.Stop()

	// Each job runs once before waiting on its ticker, and Stop must not
	// return before that first run is accounted for.
	require.Equal(t, int64(1), runs.Load())
}

func TestRunnerSurvivesFailuresAndPanics(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var ran atomic.Bool

	r := NewRunner().
		Register("failing", time.Hour, func(context.Context) error {
			return errors.New("boom")
		}).
		Register("panicking", time.Hour, func(context.Context) error {
			panic("boom")
		}).
		Register("healthy", time.Hour, func(context.Context) error {
			ran.Store(true)
			return nil
		})

	r.Start(ctx)
	cancel()
	r.Stop()

	require.True(t, ran.Load())
}
