package pathplan

// solveForwardGreedy implements §4.2.1: sweep the goal from the far
// endpoint back toward the near one, each step choosing the smallest-index
// predecessor whose fuel covers the gap. Processing goals right-to-left and
// always taking the smallest covering index preserves the minimum hop count
// (classical interval-cover argument) while producing the lexicographically
// smallest sequence on the original axis.
func solveForwardGreedy(distances, fuels []uint32) (Result, error) {
	n := len(distances)

	hops := make([]int, 1, n)
	hops[0] = n - 1
	goal := n - 1

	for goal > 0 {
		found := -1
		for i := 0; i < goal; i++ {
			if fuels[i] >= distances[goal]-distances[i] {
				found = i
				break
			}
		}
		if found < 0 {
			return Result{}, ErrNoPath
		}
		hops = append(hops, found)
		goal = found
	}

	for l, r := 0, len(hops)-1; l < r; l, r = l+1, r-1 {
		hops[l], hops[r] = hops[r], hops[l]
	}

	path := make([]uint32, len(hops))
	for i, h := range hops {
		path[i] = distances[h]
	}

	return Result{Stops: len(path) - 2, Path: path}, nil
}
