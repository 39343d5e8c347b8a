package frame

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// immediateTick fires without waiting so commands can be run inline.
func immediateTick(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return fn(time.Unix(0, 0))
	}
}

func TestScheduleCoalesces(t *testing.T) {
	t.Parallel()

	th := New(WithTick(immediateTick))

	first := th.Schedule()
	require.NotNil(t, first)
	require.True(t, th.Pending())
	require.Nil(t, th.Schedule(), "a pending frame absorbs further requests")

	msg := first()
	require.True(t, th.Due(msg))
	require.False(t, th.Pending())
	require.False(t, th.Due(msg), "a frame is consumed once")

	require.NotNil(t, th.Schedule())
}

func TestCancelInvalidatesPendingFrame(t *testing.T) {
	t.Parallel()

	th := New(WithTick(immediateTick))

	cmd := th.Schedule()
	th.Cancel()
	require.False(t, th.Pending())
	require.False(t, th.Due(cmd()))

	next := th.Schedule()
	require.True(t, th.Due(next()))
}

func TestDueIgnoresForeignMessages(t *testing.T) {
	t.Parallel()

	a := New(WithTick(immediateTick))
	b := New(WithTick(immediateTick))
	require.NotEqual(t, a.ID(), b.ID())

	cmd := a.Schedule()
	b.Schedule()

	msg := cmd()
	require.False(t, b.Due(msg))
	require.False(t, a.Due(tea.KeyMsg{}))
	require.True(t, a.Due(msg))
}

func TestWithIntervalIsPassedToTick(t *testing.T) {
	t.Parallel()

	var got time.Duration
	tick := func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		got = d
		return immediateTick(d, fn)
	}

	th := New(WithInterval(50*time.Millisecond), WithTick(tick))
	th.Schedule()
	require.Equal(t, 50*time.Millisecond, got)

	defaults := New(WithInterval(-1), WithTick(tick))
	defaults.Schedule()
	require.Equal(t, DefaultInterval, got)
}
