// Package reporter renders a word count report in the fixed table format and
// writes it to the mode's result file.
package reporter

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/dtnitsch/wordcounter/models"
	"github.com/dtnitsch/wordcounter/pkg/storage"
)

// FormatSeconds renders d in seconds with six significant digits.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', 6, 64)
}

// Render produces the full report body. Rows are sorted by word.
func Render(report *models.Report) []byte {
	words := make([]string, 0, len(report.Counts))
	for word := range report.Counts {
		words = append(words, word)
	}
	sort.Strings(words)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "WordCount completed.\nElapsed time: %s s\n\n", FormatSeconds(report.Elapsed))
	buf.WriteString("WORD\tOCCURENCES\n====\t==========\n")

	total := 0
	for _, word := range words {
		count := report.Counts[word]
		total += count
		buf.WriteString(word)
		buf.WriteByte('\t')
		buf.WriteString(strconv.Itoa(count))
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "\nTotal words count: %d\n", total)

	return buf.Bytes()
}

// Write saves the rendered report into dir under the mode's file name and
// returns the path written. The file is replaced atomically.
func Write(s *storage.Storage, dir string, report *models.Report) (string, error) {
	path := filepath.Join(dir, report.Mode.OutputFile())
	if err := s.SaveFile(path, Render(report)); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}
