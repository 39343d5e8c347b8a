package config

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: light\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan *Config, 4)
	errs := make(chan error, 4)
	err := Watch(ctx, path, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
			return
		}
		updates <- cfg
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))

	select {
	case cfg := <-updates:
		require.True(t, cfg.Dark())
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchReportsInvalidReload(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "theme: light\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 4)
	err := Watch(ctx, path, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
		}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

	select {
	case err := <-errs:
		require.Contains(t, err.Error(), "theme")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchRejectsBadArguments(t *testing.T) {
	t.Parallel()

	require.Error(t, Watch(context.Background(), "", func(*Config, error) {}))
	require.Error(t, Watch(context.Background(), "loom.yaml", nil))
}

func TestDebouncerRunsLastTrigger(t *testing.T) {
	t.Parallel()

	d := newDebouncer(20 * time.Millisecond)
	var last atomic.Int32
	var calls atomic.Int32
	for i := int32(1); i <= 5; i++ {
		d.trigger(func() {
			last.Store(i)
			calls.Add(1)
		})
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, int32(5), last.Load())

	d.trigger(func() { calls.Add(1) })
	d.stop()
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}
