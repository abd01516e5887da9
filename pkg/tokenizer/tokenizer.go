// Package tokenizer turns raw text into normalized word tokens.
//
// Words are whitespace-delimited units with every byte outside [a-zA-Z'-]
// removed. Case is preserved and no Unicode folding is applied, so multi-byte
// UTF-8 sequences are stripped entirely.
package tokenizer

import (
	"bufio"
	"fmt"
	"io"
)

// MaxWordSize bounds a single whitespace-delimited unit before stripping.
const MaxWordSize = 1 << 30

const initialBufferSize = 64 * 1024

// IsWordChar reports whether b survives normalization.
func IsWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '-' || b == '\''
}

// isSpace matches the C locale whitespace set, not unicode.IsSpace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Normalize strips every byte that is not a letter, hyphen or apostrophe.
// The result may be empty or a bare "-".
func Normalize(word []byte) string {
	keep := 0
	for _, b := range word {
		if IsWordChar(b) {
			keep++
		}
	}
	if keep == len(word) {
		return string(word)
	}

	out := make([]byte, 0, keep)
	for _, b := range word {
		if IsWordChar(b) {
			out = append(out, b)
		}
	}
	return string(out)
}

// ScanWords is a bufio.SplitFunc that splits on ASCII whitespace only.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// Append reads r to EOF and appends one normalized token per word to tokens.
func Append(tokens []string, r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), MaxWordSize)
	scanner.Split(ScanWords)

	for scanner.Scan() {
		tokens = append(tokens, Normalize(scanner.Bytes()))
	}
	if err := scanner.Err(); err != nil {
		return tokens, fmt.Errorf("failed to read words: %w", err)
	}
	return tokens, nil
}

// Tokenize reads r to EOF and returns its tokens.
func Tokenize(r io.Reader) ([]string, error) {
	return Append(nil, r)
}
