package shutter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIndex is returned when an index falls outside the table.
// Reaching it at runtime means the persisted settings and the table
// are out of sync.
var ErrInvalidIndex = errors.New("shutter index out of range")

// Table is an immutable, ordered list of shutter-speed labels in the
// camera's own notation:
//   - "N/M"  fractional seconds (1/10 = 0.1s)
//   - `N"M`  quoted decimal seconds (0"3 = 0.3s)
//   - "N"    whole seconds
type Table []string

// Default returns the speed table of the rig's camera, fastest first.
func Default() Table {
	return Table{
		"1/10", "1/8", "1/6", "1/5", "1/4", `0"3`, `0"4`, `0"5`, `0"6`,
		`0"8`, "1", `1"3`, `1"6`, "2", `2"5`, "3", `3"2`, "4", "5", "6",
		"7", "8", "10", "13", "15", "20", "25", "30", "35", "40", "45",
		"50", "55", "60",
	}
}

// Len returns the number of speeds in the table.
func (t Table) Len() int {
	return len(t)
}

// Label returns the display label at the given index.
func (t Table) Label(index int) (string, error) {
	if index < 0 || index >= len(t) {
		return "", fmt.Errorf("%w: %d (table has %d entries)", ErrInvalidIndex, index, len(t))
	}
	return t[index], nil
}

// Resolve converts the label at the given index to seconds.
func (t Table) Resolve(index int) (float64, error) {
	label, err := t.Label(index)
	if err != nil {
		return 0, err
	}

	if num, den, ok := strings.Cut(label, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("parse shutter label %q: %w", label, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("parse shutter label %q: %w", label, err)
		}
		return n / d, nil
	}

	sec, err := strconv.ParseFloat(strings.ReplaceAll(label, `"`, "."), 64)
	if err != nil {
		return 0, fmt.Errorf("parse shutter label %q: %w", label, err)
	}
	return sec, nil
}
