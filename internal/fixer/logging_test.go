package fixer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-console/internal"
	"currency-console/internal/fixer"
	"currency-console/internal/mock"
)

func TestLoggingFetcher_Latest(t *testing.T) {
	var buf bytes.Buffer
	next := mock.NewMockFetcher(t)
	snapshot := internal.NewRateSnapshot("EUR",
		internal.Date{Time: time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)},
		map[internal.CurrencyCode]float64{"USD": 1.04})

	next.EXPECT().Latest(context.Background()).Return(snapshot, nil).Once()

	f := fixer.NewLoggingFetcher(log.NewLogfmtLogger(&buf), next)
	got, err := f.Latest(context.Background())

	require.NoError(t, err)
	assert.Same(t, snapshot, got)
	out := buf.String()
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "method=latest")
	assert.Contains(t, out, "base=EUR")
	assert.Contains(t, out, "date=2024-12-26")
	assert.Contains(t, out, "currencies=1")
}

func TestLoggingFetcher_HistoricalError(t *testing.T) {
	var buf bytes.Buffer
	next := mock.NewMockFetcher(t)
	date := internal.Date{Time: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)}

	next.EXPECT().Historical(context.Background(), date).
		Return(nil, &internal.FetchError{Op: "do request", Err: errors.New("connection refused")}).
		Once()

	f := fixer.NewLoggingFetcher(log.NewLogfmtLogger(&buf), next)
	got, err := f.Historical(context.Background(), date)

	require.Error(t, err)
	assert.Nil(t, got)
	out := buf.String()
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "method=historical")
	assert.Contains(t, out, "requested=2024-12-25")
	assert.Contains(t, out, `err="do request: connection refused"`)
}
