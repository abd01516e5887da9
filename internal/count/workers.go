package count

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/dtnitsch/wordcounter/internal/common"
	"github.com/dtnitsch/wordcounter/models"
	"github.com/dtnitsch/wordcounter/pkg/detector"
	"github.com/dtnitsch/wordcounter/pkg/manifest"
	"github.com/dtnitsch/wordcounter/pkg/mapreduce"
	"github.com/dtnitsch/wordcounter/pkg/reporter"
	"github.com/dtnitsch/wordcounter/pkg/storage"
	"github.com/dtnitsch/wordcounter/pkg/tokenizer"
	"github.com/dustin/go-humanize"
)

// Run validates and tokenizes config.Files, counts the tokens in config.Mode,
// and writes the report. It returns the report and the path it was written to.
// No output is produced if any input file is invalid. Progress lines for the
// result file go to out.
//
// A manifest write failure is returned together with the report and its path:
// the result file stays in place even though the run reports an error.
func Run(logger *slog.Logger, out io.Writer, config *models.Config) (*models.Report, string, error) {
	s := &storage.Storage{}

	files, err := s.OpenAll(config.Files)
	if err != nil {
		return nil, "", err
	}
	defer storage.CloseAll(files)
	for _, f := range files {
		logger.Info("Text file loaded", "file", f.Path, "size", humanize.Bytes(uint64(f.SizeBytes)))
	}

	tokens, inputs, err := readTokens(files)
	if err != nil {
		return nil, "", err
	}
	logger.Info("Read complete", "files", len(files), "tokens", humanize.Comma(int64(len(tokens))))

	counts, chunks, elapsed := Count(logger, tokens, config.Mode, config.Workers)
	logger.Info("Word count complete", "mode", config.Mode.String(), "chunks", chunks, "elapsed_seconds", elapsed.Seconds())

	mapreduce.RemoveNonWords(counts)

	report := &models.Report{
		Mode:    config.Mode,
		Counts:  counts,
		Elapsed: elapsed,
		Workers: config.Workers,
		Chunks:  chunks,
		Inputs:  inputs,
	}
	if config.DetectLanguage {
		report.Language = detector.New().DetectLanguage(tokens)
		logger.Info("Language detected", "language", report.Language)
	}

	fmt.Fprintf(out, "Writing to %s ...\n", filepath.Join(config.OutputDir, config.Mode.OutputFile()))
	resultPath, err := reporter.Write(s, config.OutputDir, report)
	if err != nil {
		return nil, "", err
	}
	fmt.Fprintln(out, "Writing to result file completed!")
	logger.Info("Report written", "file", resultPath, "unique_words", len(report.Counts))

	if config.Manifest != "" {
		if err := manifest.GenerateSummary(s, config.Manifest, report, resultPath); err != nil {
			return report, resultPath, err
		}
		logger.Info("Manifest written", "file", config.Manifest)
	}

	return report, resultPath, nil
}

// readTokens concatenates the tokens of every file in argument order.
func readTokens(files []*storage.File) ([]string, []models.InputFile, error) {
	var tokens []string
	inputs := make([]models.InputFile, 0, len(files))

	for _, f := range files {
		before := len(tokens)
		hr := common.NewHashingReader(f)

		var err error
		tokens, err = tokenizer.Append(tokens, hr)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", storage.ErrFileUnreadable, f.Path, err)
		}

		inputs = append(inputs, models.InputFile{
			Path:      f.Path,
			SizeBytes: f.SizeBytes,
			SHA256:    hr.Sum(),
			Tokens:    len(tokens) - before,
		})
	}

	return tokens, inputs, nil
}

// Count builds the frequency map for tokens and times only the counting and
// aggregation work. Single-thread mode counts in one pass; parallel mode
// partitions tokens across a pool of workers and reduces the partial maps.
func Count(logger *slog.Logger, tokens []string, mode models.Mode, workers int) (map[string]int, int, time.Duration) {
	if mode == models.ModeParallel {
		chunks := mapreduce.Partition(tokens, workers)

		startTime := time.Now()
		logger.Info("Starting parallel word count", "workers", workers, "chunks", len(chunks))
		counts := mapreduce.Reduce(countChunks(logger, chunks, workers))
		return counts, len(chunks), time.Since(startTime)
	}

	startTime := time.Now()
	logger.Info("Starting word count")
	counts := mapreduce.Map(tokens)
	return counts, min(1, len(tokens)), time.Since(startTime)
}

// countChunks runs one Map per chunk on a fixed pool of goroutines and
// returns the partial maps in chunk order.
func countChunks(logger *slog.Logger, chunks [][]string, workerCount int) []map[string]int {
	var wg sync.WaitGroup
	jobs := make(chan Job, len(chunks))
	results := make(chan Result, len(chunks))

	for w := 1; w <= min(max(workerCount, 1), len(chunks)); w++ {
		wg.Add(1)
		go worker(w, logger, &wg, jobs, results)
	}

	for i, chunk := range chunks {
		jobs <- Job{Index: i, Tokens: chunk}
	}
	close(jobs)

	wg.Wait()
	close(results)

	partials := make([]map[string]int, len(chunks))
	for result := range results {
		partials[result.Index] = result.WordCounts
	}
	return partials
}

// worker counts chunks from jobs until the channel is closed.
func worker(id int, logger *slog.Logger, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started chunk", "worker_id", id, "chunk", job.Index, "tokens", len(job.Tokens))
		results <- Result{Index: job.Index, WordCounts: mapreduce.Map(job.Tokens)}
	}
}
