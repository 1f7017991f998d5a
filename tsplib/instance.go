package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tourlab/tourlab/tsp"
)

// ErrBadFormat is the root of every parse error in this package.
var ErrBadFormat = errors.New("tsplib: bad format")

// Instance is a parsed TSPLIB problem in the EUC_2D node-coordinate form.
type Instance struct {
	Name      string
	Comment   string
	Dimension int
	Cities    []tsp.City
}

// InstancePath resolves the conventional location of a named instance:
// <dataDir>/<name>.tsp.
func InstancePath(dataDir, name string) string {
	return filepath.Join(dataDir, name+".tsp")
}

// ParseFile opens path and parses it as a TSPLIB instance.
//
// Errors: *os.PathError on I/O failure, ErrBadFormat-wrapped on structure.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// Fall back to the file stem when the header carries no NAME.
	if inst.Name == "" {
		base := filepath.Base(path)
		inst.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return inst, nil
}

// Parse reads a TSPLIB instance from r.
//
// Contracts:
//   - DIMENSION must be declared before NODE_COORD_SECTION and must match
//     the number of coordinate rows exactly.
//   - TYPE, when present, must be TSP; EDGE_WEIGHT_TYPE, when present,
//     must be EUC_2D. Unknown header keys are ignored.
//   - An EOF line or the end of input terminates the coordinate section.
//
// Errors: every violation wraps ErrBadFormat.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inst := &Instance{Dimension: -1}
	seen := make(map[int]bool)

	inCoords := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if !inCoords {
			if line == "NODE_COORD_SECTION" {
				if inst.Dimension < 0 {
					return nil, fmt.Errorf("%w: line %d: NODE_COORD_SECTION before DIMENSION", ErrBadFormat, lineNo)
				}
				inst.Cities = make([]tsp.City, 0, inst.Dimension)
				inCoords = true
				continue
			}
			if err := parseHeader(inst, line, lineNo); err != nil {
				return nil, err
			}
			continue
		}

		city, err := parseCoordRow(line, lineNo)
		if err != nil {
			return nil, err
		}
		if seen[city.ID] {
			return nil, fmt.Errorf("%w: line %d: duplicate node id %d", ErrBadFormat, lineNo, city.ID)
		}
		seen[city.ID] = true
		if len(inst.Cities) == inst.Dimension {
			return nil, fmt.Errorf("%w: line %d: more than DIMENSION=%d coordinate rows", ErrBadFormat, lineNo, inst.Dimension)
		}
		inst.Cities = append(inst.Cities, city)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	if !inCoords {
		return nil, fmt.Errorf("%w: missing NODE_COORD_SECTION", ErrBadFormat)
	}
	if len(inst.Cities) != inst.Dimension {
		return nil, fmt.Errorf("%w: DIMENSION=%d but %d coordinate rows", ErrBadFormat, inst.Dimension, len(inst.Cities))
	}

	return inst, nil
}

// parseHeader consumes one "KEY : VALUE" line before the coordinate section.
func parseHeader(inst *Instance, line string, lineNo int) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("%w: line %d: expected KEY : VALUE, got %q", ErrBadFormat, lineNo, line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "NAME":
		inst.Name = value
	case "COMMENT":
		// Multi-line comments are concatenated with a space.
		if inst.Comment != "" {
			inst.Comment += " "
		}
		inst.Comment += value
	case "TYPE":
		if value != "TSP" {
			return fmt.Errorf("%w: line %d: unsupported TYPE %q", ErrBadFormat, lineNo, value)
		}
	case "DIMENSION":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: line %d: bad DIMENSION %q", ErrBadFormat, lineNo, value)
		}
		inst.Dimension = n
	case "EDGE_WEIGHT_TYPE":
		if value != "EUC_2D" {
			return fmt.Errorf("%w: line %d: unsupported EDGE_WEIGHT_TYPE %q", ErrBadFormat, lineNo, value)
		}
	default:
		// Ignore keys this subset does not interpret (DISPLAY_DATA_TYPE etc).
	}

	return nil
}

// parseCoordRow consumes one "id x y" line of NODE_COORD_SECTION.
func parseCoordRow(line string, lineNo int) (tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return tsp.City{}, fmt.Errorf("%w: line %d: expected \"id x y\", got %q", ErrBadFormat, lineNo, line)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: line %d: bad node id %q", ErrBadFormat, lineNo, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: line %d: bad x coordinate %q", ErrBadFormat, lineNo, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("%w: line %d: bad y coordinate %q", ErrBadFormat, lineNo, fields[2])
	}

	return tsp.City{ID: id, X: x, Y: y}, nil
}
