package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPagesCompressesAroundCurrent(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "pages", "--total", "100", "--current", "50")
	require.NoError(t, err)
	require.Equal(t, "1 ... 49 50 51 ... 100\n", out)
}

func TestPagesShortSequence(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "pages", "--total", "5")
	require.NoError(t, err)
	require.Equal(t, "1 2 3 4 5\n", out)
}

func TestPagesJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "pages", "--total", "10", "--current", "1", "--format", "json")
	require.NoError(t, err)

	var payload pagesPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, []string{"1", "2", "3", "4", "5", "...", "10"}, payload.Items)
	require.False(t, payload.HasPrevious)
	require.True(t, payload.HasNext)
	require.Equal(t, 1, payload.Request.SiblingCount)
}

func TestPagesRejectsCurrentOutOfRange(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "pages", "--total", "3", "--current", "4")
	require.ErrorContains(t, err, "outside 1..3")

	_, _, err = execute(t, "pages", "--total", "3", "--format", "xml")
	require.ErrorContains(t, err, "unsupported format")
}

func TestPagesUsesSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "loom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination:\n  total_pages: 6\n"), 0o644))

	out, _, err := execute(t, "--config", path, "pages")
	require.NoError(t, err)
	require.Equal(t, "1 2 3 4 5 6\n", out)
}

func TestInvalidSettingsFailBeforeRunning(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "loom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))

	out, _, err := execute(t, "--config", path, "pages")
	require.Error(t, err)
	require.Empty(t, out)

	var valErr *loomerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "theme", valErr.Field)
}

func TestSlotsHourly(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "slots", "--interval", "60")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 24)
	require.Equal(t, "00.00", lines[0])
	require.Equal(t, "23.00", lines[23])
}

func TestSlotsYAMLDefaultsToSettings(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "slots", "--format", "yaml")
	require.NoError(t, err)

	var payload struct {
		Interval int      `yaml:"interval"`
		Slots    []string `yaml:"slots"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &payload))
	require.Equal(t, 30, payload.Interval)
	require.Len(t, payload.Slots, 48)
	require.Equal(t, "23.30", payload.Slots[47])
}

func TestSlotsRejectsBadInterval(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "slots", "--interval", "0")
	var inputErr *loomerrors.InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestPlaceFlipsBelowAndClamps(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "place",
		"--trigger", "1,10,8,1",
		"--floating", "30,5",
		"--side", "top",
		"--viewport", "80,24",
	)
	require.NoError(t, err)

	var payload struct {
		Result struct {
			Top  float64 `json:"top"`
			Left float64 `json:"left"`
			Side string  `json:"side"`
		} `json:"result"`
		Panel struct {
			Width float64 `json:"width"`
		} `json:"panel"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, "bottom", payload.Result.Side)
	require.Equal(t, 1.0, payload.Result.Left)
	require.Greater(t, payload.Result.Top, 1.0)
	require.Equal(t, 30.0, payload.Panel.Width)
}

func TestPlaceYAMLIsDeterministic(t *testing.T) {
	t.Parallel()

	args := []string{"place", "--trigger", "100,300,120,32", "--floating", "320,180", "--viewport", "1280,800", "--pixels", "--format", "yaml"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Contains(t, first, "side: bottom")
}

func TestPlaceValidatesInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing trigger", []string{"place", "--floating", "1,1"}, "trigger"},
		{"short trigger", []string{"place", "--trigger", "1,2,3", "--floating", "1,1"}, "want 4"},
		{"negative size", []string{"place", "--trigger", "0,0,1,1", "--floating", "-1,1"}, "negative"},
		{"bad side", []string{"place", "--trigger", "0,0,1,1", "--floating", "1,1", "--side", "left"}, "unknown placement side"},
		{"text format", []string{"place", "--trigger", "0,0,1,1", "--floating", "1,1", "--format", "text"}, "unsupported format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tc.args...)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "--verbose", "pages", "--total", "5")
	require.NoError(t, err)
	require.Equal(t, "1 2 3 4 5\n", out)
	require.Contains(t, errOut, "pagination compressed")
}

func TestGalleryLoggerWithoutFileIsSilent(t *testing.T) {
	t.Parallel()

	log, closer, err := galleryLogger("", "info")
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	require.Equal(t, "disabled", log.Level())
}
