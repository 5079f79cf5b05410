package session

import (
	"strconv"
	"strings"

	"github.com/ifoxz17/highwayplanner/highway"
	"github.com/ifoxz17/highwayplanner/pathplan"
)

// Dispatch parses one command line against store and returns the single
// fixed output line for it (never newline-terminated — the caller owns
// line termination). A non-nil error means line itself could not be
// parsed (bad keyword, wrong arity, a non-numeric token); it carries no
// relation to the command's own success/failure outcome, which is always
// reported as a result string, never as an error.
func Dispatch(store *highway.Store, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", ErrBlankLine
	}

	switch fields[0] {
	case cmdAddStation:
		return dispatchAddStation(store, fields[1:])
	case cmdRemoveStation:
		return dispatchRemoveStation(store, fields[1:])
	case cmdAddCar:
		return dispatchAddCar(store, fields[1:])
	case cmdScrapCar:
		return dispatchScrapCar(store, fields[1:])
	case cmdPlanPath:
		return dispatchPlanPath(store, fields[1:])
	default:
		return "", ErrUnknownCommand
	}
}

func dispatchAddStation(store *highway.Store, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrBadArity
	}

	d, err := parseUint32(args[0])
	if err != nil {
		return "", err
	}
	n, err := parseUint32(args[1])
	if err != nil {
		return "", err
	}
	if uint64(len(args)-2) != uint64(n) {
		return "", ErrBadArity
	}

	fuels := make([]uint32, n)
	for i, tok := range args[2:] {
		f, err := parseUint32(tok)
		if err != nil {
			return "", err
		}
		fuels[i] = f
	}

	if store.AddStation(d, fuels) {
		return outAdded, nil
	}
	return outNotAdded, nil
}

func dispatchRemoveStation(store *highway.Store, args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrBadArity
	}

	d, err := parseUint32(args[0])
	if err != nil {
		return "", err
	}

	if store.RemoveStation(d) {
		return outDemolished, nil
	}
	return outNotDemolished, nil
}

func dispatchAddCar(store *highway.Store, args []string) (string, error) {
	d, f, err := parseTwo(args)
	if err != nil {
		return "", err
	}

	if store.AddCar(d, f) {
		return outAdded, nil
	}
	return outNotAdded, nil
}

func dispatchScrapCar(store *highway.Store, args []string) (string, error) {
	d, f, err := parseTwo(args)
	if err != nil {
		return "", err
	}

	if store.RemoveCar(d, f) {
		return outScrapped, nil
	}
	return outNotScrapped, nil
}

func dispatchPlanPath(store *highway.Store, args []string) (string, error) {
	a, b, err := parseTwo(args)
	if err != nil {
		return "", err
	}

	lo, hi, dir := a, b, pathplan.Forward
	if a > b {
		lo, hi, dir = b, a, pathplan.Backward
	}

	distances, fuels, ok := store.ExtractRange(lo, hi)
	if !ok {
		return outNoPath, nil
	}

	res, err := pathplan.Solve(distances, fuels, dir)
	if err != nil {
		return outNoPath, nil
	}

	return formatPath(res.Path), nil
}

func parseTwo(args []string) (uint32, uint32, error) {
	if len(args) != 2 {
		return 0, 0, ErrBadArity
	}
	d, err := parseUint32(args[0])
	if err != nil {
		return 0, 0, err
	}
	f, err := parseUint32(args[1])
	if err != nil {
		return 0, 0, err
	}
	return d, f, nil
}

func parseUint32(tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, ErrBadNumber
	}
	return uint32(v), nil
}

func formatPath(path []uint32) string {
	var b strings.Builder
	for i, d := range path {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(d), 10))
	}
	return b.String()
}
