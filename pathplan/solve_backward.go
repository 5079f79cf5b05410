package pathplan

// solveBackward implements the backward half of §4.2: reflect the slice so
// it reads ascending (reflected[i] = last - distances[n-1-i]), run the
// dynamic program of §4.2.2 over the reflection, then map the winning
// sequence back through the same reflection. The original distances/fuels
// slices are never mutated.
func solveBackward(distances, fuels []uint32) (Result, error) {
	n := len(distances)
	last := distances[n-1]

	reflectedDistances := make([]uint32, n)
	reflectedFuels := make([]uint32, n)
	for i := 0; i < n; i++ {
		reflectedDistances[i] = last - distances[n-1-i]
		reflectedFuels[i] = fuels[n-1-i]
	}

	result, err := solveBackwardDP(reflectedDistances, reflectedFuels)
	if err != nil {
		return Result{}, err
	}

	path := make([]uint32, len(result.Path))
	for i, d := range result.Path {
		path[i] = last - d
	}

	return Result{Stops: result.Stops, Path: path}, nil
}

// dpState is one viable arrival state at a station: the fuel remaining in
// the car that got you there, the minimum stop count to reach it, and a
// link to the predecessor state it was derived from. viaRefuel marks a
// state reached by swapping for the station's own best car — exactly the
// states that count as a routing stop in the final answer.
type dpState struct {
	residual    uint32
	stops       int
	predStation int
	predIndex   int
	viaRefuel   bool
}

// solveBackwardDP implements §4.2.2 over an already-ascending (reflected)
// distances/fuels pair. For each station it carries forward every viable
// residual from the previous station (minus the gap) and adds a "refuel"
// state representing a fresh car at this station; a refuel that matches an
// already-carried residual merges into it, keeping the fewer stops and, on
// ties, preferring the predecessor nearer the original start — which, after
// reflection, is the predecessor with the larger station index.
func solveBackwardDP(distances, fuels []uint32) (Result, error) {
	n := len(distances)

	rows := make([][]dpState, n)
	rows[0] = []dpState{{residual: fuels[0], stops: 0, predStation: -1, predIndex: -1}}

	for s := 0; s < n-1; s++ {
		gap := distances[s+1] - distances[s]

		var carried []dpState
		for i, st := range rows[s] {
			if st.residual >= gap {
				carried = append(carried, dpState{
					residual:    st.residual - gap,
					stops:       st.stops,
					predStation: s,
					predIndex:   i,
				})
			}
		}

		if len(carried) == 0 {
			rows[s+1] = nil
			continue
		}

		best := bestOf(carried)

		refuel := dpState{
			residual:    fuels[s+1],
			stops:       carried[best].stops + 1,
			predStation: s + 1,
			predIndex:   best,
			viaRefuel:   true,
		}

		reloadIdx := -1
		for i, st := range carried {
			if st.residual == refuel.residual {
				reloadIdx = i
			}
		}

		if reloadIdx < 0 {
			rows[s+1] = append(carried, refuel)
			continue
		}
		if refuel.stops <= carried[reloadIdx].stops {
			carried[reloadIdx] = refuel
		}
		rows[s+1] = carried
	}

	last := rows[n-1]
	if len(last) == 0 {
		return Result{}, ErrNoPath
	}

	winner := bestOf(last)

	var intermediate []uint32
	station, idx := n-1, winner
	for {
		st := rows[station][idx]
		if st.viaRefuel && station != 0 && station != n-1 {
			intermediate = append(intermediate, distances[station])
		}
		if st.predStation < 0 {
			break
		}
		station, idx = st.predStation, st.predIndex
	}
	for l, r := 0, len(intermediate)-1; l < r; l, r = l+1, r-1 {
		intermediate[l], intermediate[r] = intermediate[r], intermediate[l]
	}

	path := make([]uint32, 0, len(intermediate)+2)
	path = append(path, distances[0])
	path = append(path, intermediate...)
	path = append(path, distances[n-1])

	return Result{Stops: len(intermediate), Path: path}, nil
}

// bestOf picks the minimum-stops state in row, breaking ties by preferring
// the larger predecessor station — the backward-direction preference for
// stops nearer the original start (§4.2.2).
func bestOf(row []dpState) int {
	best := 0
	for i := 1; i < len(row); i++ {
		switch {
		case row[i].stops < row[best].stops:
			best = i
		case row[i].stops == row[best].stops && row[i].predStation > row[best].predStation:
			best = i
		}
	}
	return best
}
