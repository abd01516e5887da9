package common

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
)

// HashingReader hashes everything read through it, so a file can be
// tokenized and fingerprinted in a single pass.
type HashingReader struct {
	r io.Reader
	h hash.Hash
}

func NewHashingReader(r io.Reader) *HashingReader {
	h := sha256.New()
	return &HashingReader{r: io.TeeReader(r, h), h: h}
}

func (hr *HashingReader) Read(p []byte) (int, error) {
	return hr.r.Read(p)
}

// Sum returns the hex SHA256 of the bytes read so far.
func (hr *HashingReader) Sum() string {
	return fmt.Sprintf("%x", hr.h.Sum(nil))
}
