package count

import "errors"

// ErrUnrecognizedCommand means the invocation matched none of the supported shapes.
var ErrUnrecognizedCommand = errors.New("unrecognized or incomplete command")

// Job is one chunk of the token sequence handed to a counting worker.
type Job struct {
	Index  int
	Tokens []string
}

// Result holds the partial frequency map a worker produced for one chunk.
type Result struct {
	Index      int
	WordCounts map[string]int
}
