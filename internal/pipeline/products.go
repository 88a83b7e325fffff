package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/sheetlens/parse-cli/internal/ingest"
	"github.com/sheetlens/parse-cli/internal/model"
	"github.com/sheetlens/parse-cli/internal/products"
)

// ParseProducts runs the product-list pipeline on a raw buffer. The
// model-assisted path is attempted first when configured, with the
// line-oriented heuristics as the fallback tier. A run that extracts
// nothing is not an error: it yields an empty list with confidence 0.
func (p *Pipeline) ParseProducts(ctx context.Context, buf []byte, mimeType string) (*model.ParsedProductList, error) {
	wb, err := ingest.Ingest(buf, mimeType, p.ingestOpts)
	if err != nil {
		return nil, err
	}

	rawText := ingest.Flatten(wb.First())

	if p.assist.Available() {
		list, err := p.assist.ExtractProducts(ctx, rawText)
		if err == nil {
			return list, nil
		}
		zap.L().Warn("model-assisted product extraction failed, falling back to heuristics",
			zap.Error(err),
		)
	}

	list := products.ExtractProducts(rawText)
	return &list, nil
}
