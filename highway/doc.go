// Package highway implements the highway store: an ordered collection of
// service stations keyed by distance, each owning a multiset of car fuel
// autonomies.
//
// Overview:
//
//   - Stations are kept sorted ascending by distance in a single slice;
//     lookup, insertion point, and removal all use binary search, giving
//     O(log n) queries and O(n) worst-case insert/delete from the shift.
//   - Each Station caches the maximum fuel among its cars so path planning
//     can read it in O(1) instead of rescanning the car multiset.
//   - ExtractRange produces the two parallel arrays (distances, max fuels)
//     that package pathplan consumes; both endpoints of the range must
//     exist as stations or the extraction reports failure.
//
// Concurrency:
//
//   - Store guards its station slice (and, transitively, each Station's
//     car slice and cached MaxFuel) with a single sync.RWMutex, so the
//     type is safe to share across goroutines even though the driving
//     session is single-threaded and fully synchronous by design (see
//     package session). This costs nothing on the single-threaded path
//     and matches the "safe by default" posture third-party callers of
//     this package would expect.
//
// Error handling:
//
//   - Every mutator reports success as a boolean, matching the fixed
//     protocol outcomes session.Dispatch emits; there are no error values
//     to inspect, deliberately mirroring the original C implementation's
//     int-returning contract.
package highway
