// Package editor holds the front-end state of the four praxis screens: the
// employee directory, the therapy catalog, the daily performance editor and
// the monthly overview. It knows nothing about rendering; the terminal UI
// drives it and reads it back through accessors.
//
// Every type reaches the backend only through a narrow interface that
// *command.Client satisfies. All methods are safe to call from a bubbletea
// command goroutine while the event loop renders.
package editor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrIncomplete is returned when a form is submitted with required fields
// missing. Nothing is sent to the backend in that case.
var ErrIncomplete = errors.New("incomplete form")

// FillAllFieldsMessage is shown when a create form is missing required fields.
const FillAllFieldsMessage = "Please fill all fields"

// parseDecimal reads a user-typed number. A decimal comma is accepted.
func parseDecimal(label, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q is not a number", label, s)
	}
	return v, nil
}

// parseCount reads a session counter. Anything unparseable counts as 0 and
// fractions are truncated.
func parseCount(s string) int {
	v, err := parseDecimal("count", s)
	if err != nil {
		return 0
	}
	return int(v)
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func blank(vals ...string) bool {
	for _, v := range vals {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
