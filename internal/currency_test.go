package internal_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-console/internal"
)

func TestNewCurrencyCode(t *testing.T) {
	tests := []struct {
		in      string
		want    internal.CurrencyCode
		wantErr bool
	}{
		{"USD", "USD", false},
		{" eur ", "EUR", false},
		{"gBp", "GBP", false},
		{"", "", true},
		{"US", "", true},
		{"USDT", "", true},
		{"U1D", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := internal.NewCurrencyCode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, internal.ErrInvalidCurrencyCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyCode_JSON(t *testing.T) {
	var c internal.CurrencyCode
	require.NoError(t, json.Unmarshal([]byte(`"jpy"`), &c))
	assert.Equal(t, internal.CurrencyCode("JPY"), c)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"JPY"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"euro"`), &c))
}

func TestParseDate(t *testing.T) {
	d, err := internal.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d.Time)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = internal.ParseDate("2023-02-29")
	assert.True(t, errors.Is(err, internal.ErrInvalidDate))

	_, err = internal.ParseDate("29.02.2024")
	assert.True(t, errors.Is(err, internal.ErrInvalidDate))
}

func TestDate_JSON(t *testing.T) {
	var d internal.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-26"`), &d))
	assert.Equal(t, "2024-12-26", d.String())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-26"`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	b, err = json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
