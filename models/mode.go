package models

// Mode selects how the counting phase runs and where the report is written.
type Mode int

const (
	// ModeSingleThread counts the whole token sequence on the calling goroutine.
	ModeSingleThread Mode = iota
	ModeParallel // Chunked counting on a fixed worker pool
)

const (
	SingleThreadResultFile = "singlethread_result.txt"
	ParallelResultFile     = "multithread_result.txt"
)

// OutputFile returns the fixed report file name for the mode.
func (m Mode) OutputFile() string {
	if m == ModeParallel {
		return ParallelResultFile
	}
	return SingleThreadResultFile
}

func (m Mode) String() string {
	if m == ModeParallel {
		return "parallel"
	}
	return "singlethread"
}
