//go:build unit
// +build unit

package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) ([]*currency.ExchangeRate, error) {
	r.calls.Add(1)
	return nil, r.err
}

func TestRateScheduler_RunsAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	tests := []struct {
		name string
		err  error
	}{
		{"successful refresh", nil},
		{"failing refresh keeps the schedule alive", errors.New("provider down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := &countingRefresher{err: tt.err}
			s, err := NewRateScheduler("@every 1s", refresher, testutil.SetupTestLogger(t))
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- s.Run(ctx) }()

			assert.Eventually(t, func() bool { return refresher.calls.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)

			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("scheduler did not stop")
			}
		})
	}
}

func TestNewRateScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewRateScheduler("every tuesday", &countingRefresher{}, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestNewRateScheduler_DefaultSchedule(t *testing.T) {
	s, err := NewRateScheduler("", &countingRefresher{}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 1)
}
