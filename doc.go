// Command/module highwayplanner implements a batch command interpreter for
// the "highway planner" problem: a one-dimensional highway of service
// stations, each owning a multiset of car fuel autonomies, plus a
// minimum-stop path solver between any two stations.
//
// The module is organized as:
//
//	highway/        — the ordered station store: insert/remove/find in
//	                  O(log n), car multiset + cached max-fuel
//	                  maintenance, range extraction.
//	pathplan/       — the path solver: forward greedy with a
//	                  smallest-index tie-break, backward dynamic
//	                  programming with a nearest-original-start tie-break.
//	session/        — the command dispatcher: parses one line, drives
//	                  highway/pathplan, returns the fixed protocol
//	                  outcome string.
//	cmd/highwayctl/ — the process entrypoint: stdin/stdout/stderr
//	                  plumbing, exit codes.
package highwayplanner
