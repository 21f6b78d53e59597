package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/bibber/internal/unit"
)

// Unit tables. A unit that belongs to another quantity's table is an
// "invalid unit" for the quantity at hand; a unit in no table is
// "unknown".
var (
	timeUnits = map[string]func(float64) unit.Time{
		"s":  unit.Seconds,
		"ms": unit.Milliseconds,
		"us": unit.Microseconds,
		"ns": unit.Nanoseconds,
		"ps": unit.Picoseconds,
		"fs": unit.Femtoseconds,
	}

	// Meters per unit.
	lengthUnits = map[string]float64{
		"km": 1e3,
		"m":  1.0,
		"dm": 1e-1,
		"cm": 1e-2,
		"mm": 1e-3,
		"um": 1e-6,
		"nm": 1e-9,
		"pm": 1e-12,
		"fm": 1e-15,
	}

	// Offset subtracted to obtain Kelvin.
	temperatureUnits = map[string]float64{
		"K": 0.0,
		"C": -273.15, // 0 C == 273.15 K
	}
)

// splitUnit splits a "<value>:<unit>" token.
func splitUnit(tok string) (float64, string, error) {
	number, u, ok := strings.Cut(tok, ":")
	if !ok || u == "" {
		return 0, "", ErrNoUnit
	}
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrMalformedNumber, err)
	}
	return value, u, nil
}

func parseTime(tok string) (unit.Time, error) {
	value, u, err := splitUnit(tok)
	if err != nil {
		return unit.Zero(), err
	}
	ctor, ok := timeUnits[u]
	if !ok {
		return unit.Zero(), classifyUnit(u, lengthUnits, temperatureUnits)
	}
	return ctor(value), nil
}

// parseLength returns the length in meters.
func parseLength(tok string) (float64, error) {
	value, u, err := splitUnit(tok)
	if err != nil {
		return 0, err
	}
	factor, ok := lengthUnits[u]
	if !ok {
		return 0, classifyUnit(u, timeUnits, temperatureUnits)
	}
	return value * factor, nil
}

// parseTemperature returns the temperature in Kelvin.
func parseTemperature(tok string) (float64, error) {
	value, u, err := splitUnit(tok)
	if err != nil {
		return 0, err
	}
	offset, ok := temperatureUnits[u]
	if !ok {
		return 0, classifyUnit(u, timeUnits, lengthUnits)
	}
	return value - offset, nil
}

// classifyUnit distinguishes a unit that exists but belongs to another
// quantity from one that does not exist at all.
func classifyUnit[A, B any](u string, others map[string]A, more map[string]B) error {
	if _, ok := others[u]; ok {
		return ErrInvalidUnit
	}
	if _, ok := more[u]; ok {
		return ErrInvalidUnit
	}
	return ErrUnknownUnit
}
