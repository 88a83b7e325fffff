package ai

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetlens/parse-cli/internal/model"
	"github.com/sheetlens/parse-cli/pkg/anthropic"
)

// fakeClient returns a canned completion or error and records the request.
type fakeClient struct {
	reply string
	err   error
	last  anthropic.MessageRequest
}

func (f *fakeClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.reply}},
	}, nil
}

func TestExtractorAvailable(t *testing.T) {
	assert.False(t, (*Extractor)(nil).Available())
	assert.False(t, NewExtractor(nil, "m").Available())
	assert.True(t, NewExtractor(&fakeClient{}, "m").Available())
}

func TestExtractStatement(t *testing.T) {
	t.Run("valid completion", func(t *testing.T) {
		client := &fakeClient{reply: "```json\n" + `{
			"companyName": "Acme Corp",
			"statementType": "income",
			"revenue": 1000,
			"netIncome": 250,
			"confidence": 88
		}` + "\n```"}

		e := NewExtractor(client, "test-model")
		stmt, err := e.ExtractStatement(context.Background(), "Revenue 1000")
		require.NoError(t, err)

		assert.Equal(t, "Acme Corp", stmt.CompanyName)
		assert.Equal(t, 1000.0, stmt.Data.Revenue)
		assert.Equal(t, 88, stmt.Confidence)
		assert.Equal(t, model.SourceModel, stmt.Source)
		assert.Equal(t, "Revenue 1000", stmt.RawText)

		assert.Equal(t, "test-model", client.last.Model)
		require.Len(t, client.last.Messages, 1)
		assert.Contains(t, client.last.Messages[0].Content, "Revenue 1000")
	})

	t.Run("transport error propagates", func(t *testing.T) {
		e := NewExtractor(&fakeClient{err: eris.New("boom")}, "m")
		_, err := e.ExtractStatement(context.Background(), "text")
		assert.Error(t, err)
	})

	t.Run("non-json completion fails", func(t *testing.T) {
		e := NewExtractor(&fakeClient{reply: "I cannot extract anything from this."}, "m")
		_, err := e.ExtractStatement(context.Background(), "text")
		assert.Error(t, err)
	})

	t.Run("empty completion fails", func(t *testing.T) {
		e := NewExtractor(&fakeClient{reply: ""}, "m")
		_, err := e.ExtractStatement(context.Background(), "text")
		assert.Error(t, err)
	})

	t.Run("unconfigured client fails fast", func(t *testing.T) {
		e := NewExtractor(nil, "m")
		_, err := e.ExtractStatement(context.Background(), "text")
		assert.Error(t, err)
	})
}

func TestExtractProducts(t *testing.T) {
	t.Run("valid completion", func(t *testing.T) {
		client := &fakeClient{reply: `{
			"products": [
				{"name": "Metal Thermos", "price": 100, "quantity": 7, "currency": "USD"}
			],
			"confidence": 92
		}`}

		e := NewExtractor(client, "m")
		list, err := e.ExtractProducts(context.Background(), "Metal Thermos - 100 USD - 7 Pieces")
		require.NoError(t, err)

		require.Len(t, list.Products, 1)
		assert.Equal(t, 7, list.TotalItems)
		assert.Equal(t, 700.0, list.TotalValue)
		assert.Equal(t, 92, list.Confidence)
		assert.Equal(t, model.SourceModel, list.Source)
	})

	t.Run("empty product list is a failure", func(t *testing.T) {
		e := NewExtractor(&fakeClient{reply: `{"products": [], "confidence": 10}`}, "m")
		_, err := e.ExtractProducts(context.Background(), "nothing")
		assert.Error(t, err)
	})

	t.Run("missing products key fails validation", func(t *testing.T) {
		e := NewExtractor(&fakeClient{reply: `{"confidence": 10}`}, "m")
		_, err := e.ExtractProducts(context.Background(), "nothing")
		assert.Error(t, err)
	})
}

func TestTruncate(t *testing.T) {
	short := "short document"
	assert.Equal(t, short, truncate(short))

	long := make([]byte, maxDocumentChars+100)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, truncate(string(long)), maxDocumentChars)
}
