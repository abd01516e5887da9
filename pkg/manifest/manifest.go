package manifest

import "github.com/dtnitsch/wordcounter/models"

// RunManifest is a machine-readable summary of one run, written next to the
// human-readable result table.
type RunManifest struct {
	GeneratedAt    string             `yaml:"generated_at"`
	Mode           string             `yaml:"mode"`
	ResultFile     string             `yaml:"result_file"`
	Workers        int                `yaml:"workers"`
	Chunks         int                `yaml:"chunks"`
	ElapsedSeconds float64            `yaml:"elapsed_seconds"`
	TotalWords     int                `yaml:"total_words"`
	UniqueWords    int                `yaml:"unique_words"`
	Language       string             `yaml:"language,omitempty"`
	TopKeywords    []string           `yaml:"top_keywords,omitempty"`
	Inputs         []models.InputFile `yaml:"inputs"`
}
