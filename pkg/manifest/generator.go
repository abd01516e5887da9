package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/wordcounter/models"
	"github.com/dtnitsch/wordcounter/pkg/mapreduce"
	"github.com/dtnitsch/wordcounter/pkg/storage"
	"gopkg.in/yaml.v3"
)

// TopKeywordCount is how many of the most frequent words the manifest lists.
const TopKeywordCount = 25

// Build assembles the manifest for a finished report.
func Build(report *models.Report, resultPath string, generatedAt time.Time) RunManifest {
	return RunManifest{
		GeneratedAt:    generatedAt.Format(time.RFC3339),
		Mode:           report.Mode.String(),
		ResultFile:     resultPath,
		Workers:        report.Workers,
		Chunks:         report.Chunks,
		ElapsedSeconds: report.Elapsed.Seconds(),
		TotalWords:     report.TotalWords(),
		UniqueWords:    len(report.Counts),
		Language:       report.Language,
		TopKeywords:    mapreduce.TopKeywords(report.Counts, TopKeywordCount),
		Inputs:         report.Inputs,
	}
}

// GenerateSummary writes the run manifest for report to path as YAML.
func GenerateSummary(s *storage.Storage, path string, report *models.Report, resultPath string) error {
	manifest := Build(report, resultPath, time.Now())

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}
