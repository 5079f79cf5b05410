package pathplan

// Solve finds the fewest-intermediate-stop route over distances/fuels in
// the given direction. distances must be strictly ascending and parallel to
// fuels, exactly as highway.Store.ExtractRange returns them; dir selects the
// algorithm and tie-break, reflecting the input internally for Backward so
// the caller never reorders its own arrays.
//
// Complexity: see package doc.
func Solve(distances, fuels []uint32, dir Direction) (Result, error) {
	if err := validate(distances, fuels); err != nil {
		return Result{}, err
	}

	if len(distances) == 1 {
		return Result{Stops: 0, Path: []uint32{distances[0]}}, nil
	}

	if dir == Forward {
		return solveForwardGreedy(distances, fuels)
	}
	return solveBackward(distances, fuels)
}
