package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheetlens/parse-cli/internal/ai"
	"github.com/sheetlens/parse-cli/internal/config"
	"github.com/sheetlens/parse-cli/internal/extract"
	"github.com/sheetlens/parse-cli/internal/ingest"
	"github.com/sheetlens/parse-cli/internal/pipeline"
	"github.com/sheetlens/parse-cli/pkg/anthropic"
)

var cfg *config.Config

var (
	vocabPath string
	viaMode   string
)

var rootCmd = &cobra.Command{
	Use:   "parse-cli",
	Short: "Financial document parsing toolkit",
	Long:  "Extracts structured financial statements and product lists from spreadsheets, CSVs, and plain-text documents, with an optional Claude-assisted extraction tier.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newPipeline assembles the parse pipeline from the loaded config. The
// model-assisted tier is wired only when an API key is present and the
// extraction mode allows it.
func newPipeline() (*pipeline.Pipeline, error) {
	path := cfg.Parse.VocabularyPath
	if vocabPath != "" {
		path = vocabPath
	}

	var vocab extract.Vocabulary
	if path != "" {
		v, err := extract.LoadVocabulary(path)
		if err != nil {
			return nil, err
		}
		vocab = v
	}

	var assist *ai.Extractor
	if cfg.Anthropic.Key != "" && viaMode != "heuristic" {
		client := anthropic.NewClient(cfg.Anthropic.Key, cfg.Anthropic.RequestsPerSec)
		assist = ai.NewExtractor(client, cfg.Anthropic.Model)
	}

	return pipeline.New(pipeline.Options{
		Vocabulary:        vocab,
		Assist:            assist,
		PDFTextExtraction: cfg.Parse.PDFTextExtraction,
		KeepNegatives:     cfg.Parse.KeepNegatives,
	}), nil
}

// mimeForFile maps a file extension to the ingest MIME type. Unknown
// extensions fall back to plain text, which the ingest layer accepts.
func mimeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ingest.MimeXLSX
	case ".xls":
		return ingest.MimeXLS
	case ".csv":
		return ingest.MimeCSV
	case ".pdf":
		return ingest.MimePDF
	default:
		return ingest.MimeText
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "", "path to a YAML synonym vocabulary override")
	rootCmd.PersistentFlags().StringVar(&viaMode, "via", "auto", "extraction tier: auto or heuristic")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
