package pipeline

import (
	"context"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/sheetlens/parse-cli/internal/extract"
	"github.com/sheetlens/parse-cli/internal/ingest"
	"github.com/sheetlens/parse-cli/internal/model"
)

// ParseStatement runs the financial extraction pipeline on a raw buffer:
// ingest, select the most finance-relevant sheet, then extract. When the
// model-assisted path is configured it is attempted first; any failure
// there is absorbed and the heuristic engine produces the result instead.
// Decode-level failures propagate — there are no partial results.
func (p *Pipeline) ParseStatement(ctx context.Context, buf []byte, mimeType string) (*model.ParsedStatement, error) {
	wb, err := ingest.Ingest(buf, mimeType, p.ingestOpts)
	if err != nil {
		return nil, err
	}

	table := extract.SelectBestSheet(wb)
	rawText := ingest.Flatten(table)

	if p.assist.Available() {
		stmt, err := p.assist.ExtractStatement(ctx, rawText)
		if err == nil {
			return stmt, nil
		}
		zap.L().Warn("model-assisted statement extraction failed, falling back to heuristics",
			zap.Error(err),
		)
	}

	return p.heuristicStatement(table, rawText), nil
}

// heuristicStatement is the rule-based extraction tier: field scan, derived
// values, confidence.
func (p *Pipeline) heuristicStatement(table model.RawTable, rawText string) *model.ParsedStatement {
	rec := p.extractor.ExtractFields(table)
	rec = extract.FillDerived(rec, p.deriveOpts)

	if year, quarter := detectPeriod(rawText); year > 0 {
		rec.Year = year
		rec.Quarter = quarter
	}

	return &model.ParsedStatement{
		CompanyName:   model.DefaultCompanyName,
		StatementType: classifyStatement(rec),
		Period:        formatPeriod(rec.Year, rec.Quarter),
		Data:          rec,
		RawText:       rawText,
		Confidence:    extract.Score(rec),
		Source:        model.SourceHeuristic,
	}
}

// classifyStatement infers the statement type from which metrics were
// found: balance-sheet metrics without income metrics mean balance,
// everything else defaults to income.
func classifyStatement(rec model.FinancialRecord) model.StatementType {
	if rec.TotalAssets > 0 && rec.Revenue == 0 && rec.NetIncome == 0 {
		return model.StatementBalance
	}
	return model.StatementIncome
}

var (
	yearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	quarterRe = regexp.MustCompile(`(?i)\bQ([1-4])\b`)
)

// detectPeriod scans the raw text for a reporting year and quarter.
// Returns 0 when no plausible year is present.
func detectPeriod(text string) (year int, quarter string) {
	m := yearRe.FindString(text)
	if m == "" {
		return 0, ""
	}
	year, _ = strconv.Atoi(m)

	if q := quarterRe.FindStringSubmatch(text); q != nil {
		quarter = "Q" + q[1]
	}
	return year, quarter
}

func formatPeriod(year int, quarter string) string {
	if year <= 0 {
		return ""
	}
	if quarter != "" {
		return quarter + " " + strconv.Itoa(year)
	}
	return strconv.Itoa(year)
}
