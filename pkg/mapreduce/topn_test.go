package mapreduce

import (
	"bytes"
	"reflect"
	"testing"
)

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"the": 10, "cat": 3, "bat": 3, "a": 7, "zebra": 1}

	got := TopKeywords(counts, 4)
	want := []string{"the:10", "a:7", "bat:3", "cat:3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}

	if got := TopKeywords(counts, 100); len(got) != len(counts) {
		t.Errorf("len(TopKeywords(n > len)) = %d, want %d", len(got), len(counts))
	}
	if got := TopKeywords(counts, -1); len(got) != 0 {
		t.Errorf("TopKeywords(n < 0) = %v, want empty", got)
	}
}

func TestPrintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	counts := map[string]int{"the": 12345, "of": 2}

	if err := PrintTopKeywords(&buf, counts, 5); err != nil {
		t.Fatalf("PrintTopKeywords() error = %v", err)
	}

	want := "1. the: 12,345\n2. of: 2\n"
	if buf.String() != want {
		t.Errorf("PrintTopKeywords() wrote %q, want %q", buf.String(), want)
	}
}
