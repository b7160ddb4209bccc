package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamVador/Hanyu-VocabTracker/internal/config"
	"github.com/DamVador/Hanyu-VocabTracker/internal/platform/logger"
)

type fakeTaker struct {
	mu     sync.Mutex
	calls  []time.Time
	stored int
	err    error
}

func (f *fakeTaker) TakeDailySnapshots(_ context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	return f.stored, f.err
}

func TestRunSnapshots(t *testing.T) {
	now := time.Date(2024, 7, 1, 23, 55, 0, 0, time.UTC)

	tests := []struct {
		name    string
		taker   *fakeTaker
		wantLog string
	}{
		{"success", &fakeTaker{stored: 12}, "daily snapshots stored"},
		{"failure", &fakeTaker{stored: 3, err: errors.New("one user failed")}, "daily snapshots failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.NewTestLogger()
			s := New(config.SchedulerConfig{}, tc.taker, log)
			s.now = func() time.Time { return now }

			s.RunSnapshots()

			assert.Equal(t, []time.Time{now}, tc.taker.calls)
			assert.Contains(t, buf.String(), tc.wantLog)
		})
	}
}

func TestStartStop(t *testing.T) {
	s := New(config.SchedulerConfig{SnapshotTime: "03:30"}, &fakeTaker{}, nil)

	require.NoError(t, s.Start())
	assert.Error(t, s.Start())

	next := s.NextSnapshot()
	assert.Equal(t, 3, next.UTC().Hour())
	assert.Equal(t, 30, next.UTC().Minute())

	s.Stop()
	s.Stop()
}

func TestStartRejectsBadTime(t *testing.T) {
	s := New(config.SchedulerConfig{SnapshotTime: "25:99"}, &fakeTaker{}, nil)
	assert.Error(t, s.Start())
}

func TestDefaults(t *testing.T) {
	s := New(config.SchedulerConfig{}, &fakeTaker{}, nil)
	assert.Equal(t, DefaultSnapshotTime, s.at)
	assert.Panics(t, func() { New(config.SchedulerConfig{}, nil, nil) })
}
