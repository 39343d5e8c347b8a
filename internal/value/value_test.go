package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwnedValueMutatesAndNotifies(t *testing.T) {
	t.Parallel()

	var seen []string
	v := New(nil, "a", func(next string) { seen = append(seen, next) })

	require.Equal(t, Owned, v.Mode())
	require.Equal(t, "a", v.Get())

	v.Request("b")
	require.Equal(t, "b", v.Get())
	require.Equal(t, []string{"b"}, seen)
}

func TestDelegatedValueOnlyReports(t *testing.T) {
	t.Parallel()

	var seen []int
	external := 3
	v := New(&external, 99, func(next int) { seen = append(seen, next) })

	require.Equal(t, Delegated, v.Mode())
	require.Equal(t, 3, v.Get())

	v.Request(4)
	require.Equal(t, 3, v.Get(), "delegated value waits for the host")
	require.Equal(t, []int{4}, seen)

	require.True(t, v.Sync(4))
	require.Equal(t, 4, v.Get())
}

func TestModeNeverSwitches(t *testing.T) {
	t.Parallel()

	owned := NewOwned(false, nil)
	require.False(t, owned.Sync(true))
	require.False(t, owned.Get())
	require.Equal(t, Owned, owned.Mode())

	delegated := NewDelegated(false, nil)
	require.False(t, delegated.Reset(true))
	require.False(t, delegated.Get())
	require.Equal(t, Delegated, delegated.Mode())
}

func TestDelegatedCopiesExternalAtConstruction(t *testing.T) {
	t.Parallel()

	external := "x"
	v := New(&external, "", nil)
	external = "y"

	require.Equal(t, "x", v.Get())
}

func TestResetDoesNotNotify(t *testing.T) {
	t.Parallel()

	calls := 0
	v := NewOwned(1, func(int) { calls++ })
	require.True(t, v.Reset(2))
	require.Equal(t, 2, v.Get())
	require.Zero(t, calls)
}

func TestModeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "owned", Owned.String())
	require.Equal(t, "delegated", Delegated.String())
}
