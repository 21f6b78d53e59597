// Package recipe parses the bibber simulation recipe format.
//
// A recipe is line-oriented key-value text. Quantities carry their unit
// after a colon separator:
//
//	title     My universe
//	start     0:ns
//	end       0.1:ns
//	timestep  10:fs
//	snapshot  1:ps
//	temperature 300:K
//	particles 100
//	boundary  cubic 100:nm 100:nm 100:nm
//
// Lines starting with '#' are comments. Every key above is required.
package recipe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/bibber/internal/unit"
	"github.com/san-kum/bibber/internal/vec"
)

// Recipe holds the typed simulation parameters parsed from a recipe
// file. The core consumes this struct only.
type Recipe struct {
	Title string

	Start    unit.Time
	End      unit.Time
	Timestep unit.Time
	Snapshot unit.Time

	// Temperature target in Kelvin.
	Temperature float64

	// Particles is the number of particles to seed.
	Particles int

	// Boundary holds the periodic box extents in meters.
	Boundary vec.Vec3
}

// Duration returns the simulated time from start to end.
func (r *Recipe) Duration() unit.Time {
	return r.End.Sub(r.Start)
}

// Timesteps returns the number of integration steps the recipe spans.
func (r *Recipe) Timesteps() int {
	return int(r.Duration().AsSeconds() / r.Timestep.AsSeconds())
}

// Snapshots returns the number of trajectory snapshots the recipe spans.
func (r *Recipe) Snapshots() int {
	return int(r.Duration().AsSeconds() / r.Snapshot.AsSeconds())
}

// Load reads and parses a recipe file.
func Load(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses a recipe from a string.
func ParseString(src string) (*Recipe, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads a recipe line by line. Parse errors carry the offending
// line number and directive.
func Parse(r io.Reader) (*Recipe, error) {
	rcp := &Recipe{}
	seen := map[string]bool{}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		directive, args := fields[0], fields[1:]
		if err := rcp.apply(directive, args); err != nil {
			return nil, &ParseError{Line: lineno, Directive: directive, Wrapped: err}
		}
		seen[directive] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, key := range []string{"title", "start", "end", "timestep", "snapshot", "temperature", "particles", "boundary"} {
		if !seen[key] {
			return nil, fmt.Errorf("recipe: missing directive %q: %w", key, ErrMissingDirective)
		}
	}
	return rcp, nil
}

func (rcp *Recipe) apply(directive string, args []string) error {
	switch directive {
	case "title":
		if len(args) == 0 {
			return ErrTooFewArguments
		}
		rcp.Title = strings.Join(args, " ")
		return nil
	case "start":
		return parseSingleTime(args, &rcp.Start)
	case "end":
		return parseSingleTime(args, &rcp.End)
	case "timestep":
		return parseSingleTime(args, &rcp.Timestep)
	case "snapshot":
		return parseSingleTime(args, &rcp.Snapshot)
	case "temperature":
		if err := checkArgs(args, 1); err != nil {
			return err
		}
		kelvin, err := parseTemperature(args[0])
		if err != nil {
			return err
		}
		rcp.Temperature = kelvin
		return nil
	case "particles":
		if err := checkArgs(args, 1); err != nil {
			return err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedNumber, err)
		}
		rcp.Particles = n
		return nil
	case "boundary":
		// The shape keyword is reserved for future boundary kinds;
		// only "cubic" exists today.
		if err := checkArgs(args, 4); err != nil {
			return err
		}
		x, err := parseLength(args[1])
		if err != nil {
			return err
		}
		y, err := parseLength(args[2])
		if err != nil {
			return err
		}
		z, err := parseLength(args[3])
		if err != nil {
			return err
		}
		rcp.Boundary = vec.New(x, y, z)
		return nil
	default:
		return ErrUnknownDirective
	}
}

func parseSingleTime(args []string, out *unit.Time) error {
	if err := checkArgs(args, 1); err != nil {
		return err
	}
	t, err := parseTime(args[0])
	if err != nil {
		return err
	}
	*out = t
	return nil
}

func checkArgs(args []string, expected int) error {
	switch {
	case len(args) < expected:
		return ErrTooFewArguments
	case len(args) > expected:
		return ErrTooManyArguments
	default:
		return nil
	}
}
