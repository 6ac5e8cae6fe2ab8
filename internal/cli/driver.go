// Package cli implements the line-oriented external driver described
// informatively in §6: one command per input line, '#'-prefixed and
// blank lines ignored, fields separated by ';'. It is not part of the
// core's specified API surface (§1) — it exists as the runnable
// example driver every package under cmd/ in this codebase carries,
// calling the roadmap façade for every mutation.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okdaichi/roadmap/internal/rmerr"
	"github.com/okdaichi/roadmap/internal/roadmap"
)

// Driver reads commands from an input stream and drives a Map,
// reporting failures as "ERROR <line>" on Err and getRouteDescription
// results on Out, exactly as §6 describes the default CLI behaviour.
type Driver struct {
	Map *roadmap.Map
	Out io.Writer
	Err io.Writer
}

// NewDriver wires a Driver to the given map and output streams.
func NewDriver(m *roadmap.Map, out, errOut io.Writer) *Driver {
	return &Driver{Map: m, Out: out, Err: errOut}
}

// Run consumes every line of in until EOF, dispatching recognised
// commands and route literals. It reports whether any line failed with
// an allocation failure — the caller uses this to pick the process
// exit code (0 normally, 1 if any line hit OutOfMemory, per §6).
func (d *Driver) Run(in io.Reader) (sawOutOfMemory bool) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := d.dispatch(line); err != nil {
			fmt.Fprintf(d.Err, "ERROR %d\n", lineNo)
			if rmerr.Is(err, rmerr.OutOfMemory) {
				sawOutOfMemory = true
			}
		}
	}
	return sawOutOfMemory
}

func (d *Driver) dispatch(line string) error {
	fields := strings.Split(line, ";")
	switch fields[0] {
	case "addRoad":
		return d.addRoad(fields[1:])
	case "repairRoad":
		return d.repairRoad(fields[1:])
	case "newRoute":
		return d.newRoute(fields[1:])
	case "extendRoute":
		return d.extendRoute(fields[1:])
	case "removeRoad":
		return d.removeRoad(fields[1:])
	case "removeRoute":
		return d.removeRoute(fields[1:])
	case "getRouteDescription":
		return d.getRouteDescription(fields[1:])
	default:
		return d.routeLiteral(fields)
	}
}

func (d *Driver) addRoad(f []string) error {
	if len(f) != 4 {
		return rmerr.ErrInvalidArgument
	}
	length, err := strconv.ParseUint(f[2], 10, 32)
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	year, err := strconv.ParseInt(f[3], 10, 32)
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	return d.Map.AddRoad(f[0], f[1], uint32(length), int32(year))
}

func (d *Driver) repairRoad(f []string) error {
	if len(f) != 3 {
		return rmerr.ErrInvalidArgument
	}
	year, err := strconv.ParseInt(f[2], 10, 32)
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	return d.Map.RepairRoad(f[0], f[1], int32(year))
}

func (d *Driver) newRoute(f []string) error {
	if len(f) != 3 {
		return rmerr.ErrInvalidArgument
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	return d.Map.NewRoute(id, f[1], f[2])
}

func (d *Driver) extendRoute(f []string) error {
	if len(f) != 2 {
		return rmerr.ErrInvalidArgument
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	return d.Map.ExtendRoute(id, f[1])
}

func (d *Driver) removeRoad(f []string) error {
	if len(f) != 2 {
		return rmerr.ErrInvalidArgument
	}
	return d.Map.RemoveRoad(f[0], f[1])
}

func (d *Driver) removeRoute(f []string) error {
	if len(f) != 1 {
		return rmerr.ErrInvalidArgument
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	return d.Map.RemoveRoute(id)
}

func (d *Driver) getRouteDescription(f []string) error {
	if len(f) != 1 {
		return rmerr.ErrInvalidArgument
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	desc, err := d.Map.GetRouteDescription(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.Out, desc)
	return nil
}

// routeLiteral parses <id>;<c0>;<len0>;<year0>;<c1>;...;<cN> (§6) and
// dispatches it to route_from_list.
func (d *Driver) routeLiteral(fields []string) error {
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return rmerr.ErrInvalidArgument
	}
	rest := fields[1:]
	if len(rest) < 4 || (len(rest)+2)%3 != 0 {
		return rmerr.ErrInvalidArgument
	}
	n := (len(rest) + 2) / 3

	names := make([]string, n)
	lengths := make([]uint32, n-1)
	years := make([]int32, n-1)

	names[0] = rest[0]
	for i := 0; i < n-1; i++ {
		length, err := strconv.ParseUint(rest[1+3*i], 10, 32)
		if err != nil {
			return rmerr.ErrInvalidArgument
		}
		year, err := strconv.ParseInt(rest[2+3*i], 10, 32)
		if err != nil {
			return rmerr.ErrInvalidArgument
		}
		lengths[i] = uint32(length)
		years[i] = int32(year)
		names[i+1] = rest[3+3*i]
	}

	return d.Map.RouteFromList(id, names, lengths, years)
}
