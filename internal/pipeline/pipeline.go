// Package pipeline wires ingestion, sheet selection, the heuristic
// extractors, and the optional model-assisted path into the two parse
// operations exposed to the CLI and the HTTP server.
package pipeline

import (
	"github.com/sheetlens/parse-cli/internal/ai"
	"github.com/sheetlens/parse-cli/internal/extract"
	"github.com/sheetlens/parse-cli/internal/ingest"
)

// Pipeline holds the per-process extraction dependencies. It carries no
// per-request state: every parse call is an independent, pure
// input-to-output transform, so concurrent calls need no coordination.
type Pipeline struct {
	extractor  *extract.Extractor
	assist     *ai.Extractor
	ingestOpts ingest.Options
	deriveOpts extract.DeriveOptions
}

// Options configures a Pipeline.
type Options struct {
	// Vocabulary overrides the built-in synonym dictionary (nil = defaults).
	Vocabulary extract.Vocabulary
	// Assist is the optional model-assisted extractor; nil disables it.
	Assist *ai.Extractor
	// PDFTextExtraction enables the real PDF text layer (default placeholder).
	PDFTextExtraction bool
	// KeepNegatives preserves negative derived values instead of taking
	// absolute magnitudes.
	KeepNegatives bool
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{
		extractor:  extract.NewExtractor(opts.Vocabulary),
		assist:     opts.Assist,
		ingestOpts: ingest.Options{PDFTextExtraction: opts.PDFTextExtraction},
		deriveOpts: extract.DeriveOptions{KeepNegatives: opts.KeepNegatives},
	}
}
