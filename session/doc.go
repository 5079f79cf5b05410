// Package session implements the command dispatcher: one line in, one
// line out, against a shared highway.Store.
//
// Overview:
//
//   - Dispatch parses a single command line, calls the matching
//     highway.Store mutator or pathplan.Solve, and returns exactly one
//     line from the fixed outcome vocabulary (see vocabulary.go) — never
//     a Go error for a precondition failure, since the protocol has no
//     concept of one. A non-nil error from Dispatch means the *line
//     itself* was unparseable (bad keyword, wrong arity, a token that
//     isn't a valid uint32), which the caller is expected to report as a
//     diagnostic without terminating the session.
//   - Direction for pianifica-percorso is inferred from argument order:
//     a < b forward, a > b backward, a == b the trivial single-station
//     path.
//
// Error handling:
//
//   - Malformed lines (unknown keyword, wrong argument count, a
//     non-numeric token) return one of the sentinel errors in errors.go;
//     these never reach stdout, only the diagnostic stream cmd/highwayctl
//     writes to stderr.
//   - Every precondition failure from the store or "no path" from the
//     solver is reported on stdout as the matching fixed failure string;
//     Dispatch itself never returns an error for these — precondition and
//     resource failures are command-level outcomes, not process-level
//     ones.
package session
