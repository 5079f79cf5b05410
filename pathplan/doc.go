// Package pathplan finds the minimum-stop route between two points on a
// one-dimensional highway, given the stations' distances and their maximum
// per-car fuel autonomy.
//
// Overview:
//
//   - Solve takes two parallel arrays (distances strictly ascending, fuels
//     the corresponding per-station maximum autonomy) and a Direction, and
//     returns the fewest-intermediate-stop route connecting the first and
//     last entries.
//   - Forward direction (a < b) runs a right-to-left greedy sweep: classical
//     interval-cover reasoning, smallest-index tie-break.
//   - Backward direction (a > b) reflects the input so it reads ascending,
//     then runs a dynamic program that tracks every viable residual-fuel
//     state per station and reconstructs the winning chain by predecessor
//     links, preferring stops with larger original-axis distance on ties.
//
// Complexity:
//
//   - Forward: O(n²) worst case, near-linear in practice (each goal scans at
//     most the stations behind it, and a find usually terminates early).
//   - Backward: O(n·f) time and space, where f is the mean number of viable
//     residual-fuel states carried per station.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput: distances or fuels has zero length.
//   - ErrMismatchedLengths: distances and fuels differ in length.
//   - ErrNotAscending: distances is not strictly increasing.
//   - ErrNoPath: every candidate sequence fails the reachability condition.
//     Callers should not try to distinguish "genuinely unreachable" from
//     other boundary failures — this sentinel is the single observable
//     outcome for "no route exists."
//
// API reference:
//
//	func Solve(distances, fuels []uint32, dir Direction) (Result, error)
//
//	  - distances: strictly ascending station distances for the requested slice.
//	  - fuels:     parallel array, fuels[i] is the maximum autonomy at distances[i].
//	  - dir:       Forward or Backward; callers infer it from the sign of b-a.
//	  - Result:    Stops (intermediate stop count) and Path (Stops+2 distances
//	               in travel order: distances[0] to distances[len-1] for
//	               Forward, distances[len-1] to distances[0] for Backward; a
//	               single-entry input yields the one-element path).
package pathplan
