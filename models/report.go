package models

import "time"

// Report is the final payload of one run.
type Report struct {
	Mode    Mode
	Counts  map[string]int
	Elapsed time.Duration // Counting and aggregation only
	Workers int
	Chunks  int
	Inputs  []InputFile

	// Language is the detected dominant language, empty when detection is off or inconclusive.
	Language string
}

// InputFile describes one input file after it has been tokenized.
type InputFile struct {
	Path      string `yaml:"path"`
	SizeBytes int64  `yaml:"size_bytes"`
	SHA256    string `yaml:"sha256"`
	Tokens    int    `yaml:"tokens"`
}

// TotalWords sums every count in the report.
func (r *Report) TotalWords() int {
	total := 0
	for _, count := range r.Counts {
		total += count
	}
	return total
}
