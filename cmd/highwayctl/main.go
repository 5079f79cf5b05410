// Command highwayctl is the process entrypoint: it reads newline-delimited
// commands from stdin, drives a highway.Store through session.Dispatch one
// line at a time, and writes one protocol line per command to stdout.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ifoxz17/highwayplanner/highway"
	"github.com/ifoxz17/highwayplanner/session"
)

// maxLineBytes bounds a single command line: a line longer than this is a
// fatal, process-terminating overflow rather than a per-command failure.
const maxLineBytes = 8096

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	logger := zerolog.New(stderr).With().Timestamp().Logger()

	store := highway.NewStore(0)

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, maxLineBytes), maxLineBytes)

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		result, err := session.Dispatch(store, line)
		if err != nil {
			logger.Warn().
				Int("line", lineNo).
				Str("text", line).
				Err(err).
				Msg("malformed command")
			continue
		}

		if _, err := out.WriteString(result); err != nil {
			logger.Error().Err(err).Msg("write to stdout failed")
			return 1
		}
		if err := out.WriteByte('\n'); err != nil {
			logger.Error().Err(err).Msg("write to stdout failed")
			return 1
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error().
			Int("line", lineNo+1).
			Int("capacity", maxLineBytes).
			Err(err).
			Msg("command length exceeds buffer capacity")
		out.Flush()
		return 1
	}

	return 0
}
