package postgresql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-console/internal"
)

func TestSnapshotRows(t *testing.T) {
	date, err := internal.ParseDate("2024-12-25")
	require.NoError(t, err)
	s := internal.NewRateSnapshot("EUR", date, map[internal.CurrencyCode]float64{
		"USD": 1.0393,
		"EUR": 1,
		"JPY": 163.4,
		"BTC": 0.00001058,
	})

	assert.Equal(t, []rateRow{
		{quote: "BTC", rate: "0.00001058"},
		{quote: "EUR", rate: "1"},
		{quote: "JPY", rate: "163.4"},
		{quote: "USD", rate: "1.0393"},
	}, snapshotRows(s))
}

func TestAsOfDate(t *testing.T) {
	_, ok := asOfDate(internal.Date{})
	assert.False(t, ok)

	d := internal.NewDate(time.Date(2024, 12, 25, 18, 30, 0, 0, time.FixedZone("X", 3*3600)))
	got, ok := asOfDate(d)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), got)
}
