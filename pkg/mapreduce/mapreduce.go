package mapreduce

// Partition splits tokens into min(workers, len(tokens)) contiguous chunks of
// len(tokens)/workers tokens each. The last chunk absorbs the remainder of the
// division. Chunks are capacity-limited views into tokens and must be treated
// as read-only.
func Partition(tokens []string, workers int) [][]string {
	if len(tokens) == 0 {
		return nil
	}
	workers = max(workers, 1)

	// Fewer tokens than workers would give a zero step: one token per chunk instead.
	step := max(len(tokens)/workers, 1)
	n := min(workers, len(tokens))

	chunks := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		start := i * step
		end := start + step
		if i == n-1 {
			end = len(tokens)
		}
		chunks = append(chunks, tokens[start:end:end])
	}
	return chunks
}

// Map generates a word frequency map for a token sequence.
// It only reads tokens, so disjoint chunks may be mapped concurrently.
func Map(tokens []string) map[string]int {
	counts := make(map[string]int)
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

// RemoveNonWords deletes the empty and bare-hyphen entries left behind by
// stripping. Every other entry is kept as is.
func RemoveNonWords(counts map[string]int) {
	delete(counts, "")
	delete(counts, "-")
}
