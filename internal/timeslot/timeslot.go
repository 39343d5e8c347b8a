// Package timeslot enumerates the times of day offered by time selection
// widgets.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// MinutesPerDay is the exclusive upper bound of a slot's minute offset.
const MinutesPerDay = 24 * 60

// DefaultInterval is the step used by the time picker when none is set.
const DefaultInterval = 30

var (
	// ErrInvalidInterval is wrapped when the interval is not positive.
	ErrInvalidInterval = errors.New("interval must be positive")
	// ErrInvalidLabel is wrapped when a label is not a valid "HH.mm" time.
	ErrInvalidLabel = errors.New("label must be HH.mm")
)

// Generate returns every slot from "00.00" stepping by intervalMinutes.
// When the interval does not divide a day evenly the last partial step is
// dropped; no slot wraps past midnight.
func Generate(intervalMinutes int) ([]string, error) {
	if intervalMinutes <= 0 {
		return nil, apperrors.NewInputError("timeslot.Generate", "interval", intervalMinutes, ErrInvalidInterval)
	}

	slots := make([]string, 0, (MinutesPerDay+intervalMinutes-1)/intervalMinutes)
	for minute := 0; minute < MinutesPerDay; minute += intervalMinutes {
		slots = append(slots, Format(minute))
	}
	return slots, nil
}

// Format renders a minute-of-day offset as "HH.mm".
func Format(minuteOfDay int) string {
	return fmt.Sprintf("%02d.%02d", minuteOfDay/60, minuteOfDay%60)
}

// Parse converts an "HH.mm" label back to its minute-of-day offset.
func Parse(label string) (int, error) {
	hours, minutes, ok := strings.Cut(label, ".")
	if !ok || len(hours) != 2 || len(minutes) != 2 {
		return 0, apperrors.NewInputError("timeslot.Parse", "label", label, ErrInvalidLabel)
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 23 {
		return 0, apperrors.NewInputError("timeslot.Parse", "label", label, ErrInvalidLabel)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m > 59 {
		return 0, apperrors.NewInputError("timeslot.Parse", "label", label, ErrInvalidLabel)
	}
	return h*60 + m, nil
}

// IndexOf returns the position of label in slots, or -1.
func IndexOf(slots []string, label string) int {
	for i, slot := range slots {
		if slot == label {
			return i
		}
	}
	return -1
}
