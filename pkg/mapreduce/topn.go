package mapreduce

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
)

type kv struct {
	Key   string
	Value int
}

// rank orders entries by count descending, then word ascending.
func rank(wordCounts map[string]int, n int) []kv {
	ss := make([]kv, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := max(min(n, len(ss)), 0)
	return ss[:limit]
}

// TopKeywords returns the top N words as "word:count" strings (e.g. "the:1153").
func TopKeywords(wordCounts map[string]int, n int) []string {
	top := rank(wordCounts, n)
	keywords := make([]string, len(top))
	for i, item := range top {
		keywords[i] = fmt.Sprintf("%s:%d", item.Key, item.Value)
	}
	return keywords
}

// PrintTopKeywords writes the top N words as a numbered list.
func PrintTopKeywords(w io.Writer, wordCounts map[string]int, n int) error {
	for i, item := range rank(wordCounts, n) {
		if _, err := fmt.Fprintf(w, "%d. %s: %s\n", i+1, item.Key, humanize.Comma(int64(item.Value))); err != nil {
			return err
		}
	}
	return nil
}
