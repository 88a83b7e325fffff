// Package ai implements the optional model-assisted extraction path. Every
// failure mode — missing credential, transport error, empty or malformed
// completion — surfaces as an error the pipeline absorbs by falling back to
// the heuristic engine; nothing here is ever fatal to a parse call.
package ai

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sheetlens/parse-cli/internal/model"
	"github.com/sheetlens/parse-cli/pkg/anthropic"
)

// maxCompletionTokens bounds the completion: both result schemas fit
// comfortably.
const maxCompletionTokens = 2048

// extractionTemperature keeps completions near-deterministic.
const extractionTemperature = 0.1

// maxDocumentChars truncates oversized documents before prompting.
const maxDocumentChars = 24000

// Extractor sends ingested text to a completion endpoint with a strict
// JSON-schema prompt and validates the result. A single failed attempt
// returns an error — no retries, no backoff; retry policy belongs to the
// caller's fallback tier.
type Extractor struct {
	client    anthropic.Client
	modelName string
}

// NewExtractor creates an Extractor. A nil client means the credential is
// not configured; Available reports false and extraction fails fast.
func NewExtractor(client anthropic.Client, modelName string) *Extractor {
	return &Extractor{client: client, modelName: modelName}
}

// Available reports whether the completion dependency is configured.
func (e *Extractor) Available() bool {
	return e != nil && e.client != nil
}

// ExtractStatement asks the model for a financial statement record and
// coerces the reply into the canonical schema.
func (e *Extractor) ExtractStatement(ctx context.Context, text string) (*model.ParsedStatement, error) {
	raw, err := e.complete(ctx, statementSystemText, fmt.Sprintf(statementPrompt, truncate(text)))
	if err != nil {
		return nil, err
	}
	if err := statementSchema.Validate(raw); err != nil {
		return nil, eris.Wrap(err, "ai: statement completion failed validation")
	}
	return coerceStatement(raw, text), nil
}

// ExtractProducts asks the model for an itemized product list. A completion
// that validates but contains zero products is treated as a failure so the
// line-oriented heuristics get their chance.
func (e *Extractor) ExtractProducts(ctx context.Context, text string) (*model.ParsedProductList, error) {
	raw, err := e.complete(ctx, productSystemText, fmt.Sprintf(productPrompt, truncate(text)))
	if err != nil {
		return nil, err
	}
	if err := productSchema.Validate(raw); err != nil {
		return nil, eris.Wrap(err, "ai: product completion failed validation")
	}
	list := coerceProducts(raw, text)
	if len(list.Products) == 0 {
		return nil, eris.New("ai: product completion contained no products")
	}
	return list, nil
}

// complete performs the single model call and decodes the loose JSON object.
func (e *Extractor) complete(ctx context.Context, system, prompt string) (map[string]any, error) {
	if !e.Available() {
		return nil, eris.New("ai: completion client not configured")
	}

	temp := extractionTemperature
	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       e.modelName,
		MaxTokens:   maxCompletionTokens,
		System:      system,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "ai: create message")
	}

	text := resp.Text()
	if text == "" {
		return nil, eris.New("ai: empty completion")
	}
	return decodeObject(text)
}

func truncate(text string) string {
	if len(text) <= maxDocumentChars {
		return text
	}
	return text[:maxDocumentChars]
}
