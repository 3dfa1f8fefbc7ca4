package internal

import (
	"context"
	"fmt"
	"math"
)

// RatesResponse is the provider payload. On success Base, Date and Rates are
// set; otherwise Error describes the failure.
type RatesResponse struct {
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp,omitempty"`
	Base      string             `json:"base,omitempty"`
	Date      Date               `json:"date"`
	Rates     map[string]float64 `json:"rates,omitempty"`
	Error     *ProviderError     `json:"error,omitempty"`
}

// Snapshot translates a success payload into a RateSnapshot with no unit
// conversion. Codes and rates are checked for well-formedness first.
func (r *RatesResponse) Snapshot() (*RateSnapshot, error) {
	base, err := NewCurrencyCode(r.Base)
	if err != nil {
		return nil, fmt.Errorf("invalid base %q: %w", r.Base, err)
	}
	if r.Date.IsZero() {
		return nil, fmt.Errorf("date is empty")
	}

	rates := make(map[CurrencyCode]float64, len(r.Rates))
	for quoteStr, rate := range r.Rates {
		quote, err := NewCurrencyCode(quoteStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quote %q: %w", quoteStr, err)
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("invalid rate %s/%s=%v", base, quote, rate)
		}
		rates[quote] = rate
	}

	return NewRateSnapshot(base, r.Date, rates), nil
}

// Fetcher loads rate snapshots from a remote provider.
type Fetcher interface {
	Latest(ctx context.Context) (*RateSnapshot, error)
	Historical(ctx context.Context, date Date) (*RateSnapshot, error)
}
