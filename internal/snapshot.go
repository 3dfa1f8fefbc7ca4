package internal

import (
	"fmt"
	"math"
	"sort"
)

// RateSnapshot holds the rates valid for one date, expressed relative to one
// base currency. It is never mutated after construction.
type RateSnapshot struct {
	base  CurrencyCode
	date  Date
	rates map[CurrencyCode]float64
}

// NewRateSnapshot builds a snapshot verbatim from a provider payload.
// The rates map is copied so later changes by the caller are not observed.
func NewRateSnapshot(base CurrencyCode, date Date, rates map[CurrencyCode]float64) *RateSnapshot {
	cp := make(map[CurrencyCode]float64, len(rates))
	for k, v := range rates {
		cp[k] = v
	}
	return &RateSnapshot{base: base, date: date, rates: cp}
}

func (s *RateSnapshot) Base() CurrencyCode { return s.base }

func (s *RateSnapshot) Date() Date { return s.date }

func (s *RateSnapshot) Len() int { return len(s.rates) }

// Rate returns the rate of code relative to the snapshot base.
// The base itself resolves to 1 when the provider omitted it.
func (s *RateSnapshot) Rate(code CurrencyCode) (float64, bool) {
	r, ok := s.rates[code]
	if ok {
		return r, true
	}
	if code == s.base {
		return 1, true
	}
	return 0, false
}

// Rates returns a copy of the rate mapping.
func (s *RateSnapshot) Rates() map[CurrencyCode]float64 {
	cp := make(map[CurrencyCode]float64, len(s.rates))
	for k, v := range s.rates {
		cp[k] = v
	}
	return cp
}

// Currencies returns the codes of the rate mapping in ascending order.
func (s *RateSnapshot) Currencies() []CurrencyCode {
	out := make([]CurrencyCode, 0, len(s.rates))
	for k := range s.rates {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Rebase recomputes every rate relative to newBase:
// rate(c, newBase) = rate(c, oldBase) / rate(newBase, oldBase).
// The result keeps the codes of s. An old base that was only implicit is
// added with rate 1/r so the result can be rebased back.
func (s *RateSnapshot) Rebase(newBase CurrencyCode) (*RateSnapshot, error) {
	r, ok := s.Rate(newBase)
	if !ok {
		return nil, &UnknownCurrencyError{Code: newBase}
	}
	if r == 0 {
		return nil, fmt.Errorf("rate %s/%s: %w", newBase, s.base, ErrZeroRate)
	}

	inv := 1 / r
	rates := make(map[CurrencyCode]float64, len(s.rates)+1)
	for k, v := range s.rates {
		rates[k] = v * inv
	}
	if _, ok := s.rates[s.base]; !ok && s.base != newBase {
		rates[s.base] = inv
	}
	for k, v := range rates {
		if !isFinite(v) {
			return nil, fmt.Errorf("rebase %s onto %s: %w", k, newBase, ErrNotFinite)
		}
	}

	return &RateSnapshot{base: newBase, date: s.date, rates: rates}, nil
}

// Convert expresses amount of from in units of to. from is checked before to.
func (s *RateSnapshot) Convert(from, to CurrencyCode, amount float64) (float64, error) {
	fromRate, ok := s.Rate(from)
	if !ok {
		return 0, &UnknownCurrencyError{Code: from}
	}
	toRate, ok := s.Rate(to)
	if !ok {
		return 0, &UnknownCurrencyError{Code: to}
	}
	if fromRate == 0 {
		return 0, fmt.Errorf("rate %s/%s: %w", from, s.base, ErrZeroRate)
	}

	result := (amount / fromRate) * toRate
	if !isFinite(result) {
		return 0, fmt.Errorf("convert %v %s to %s: %w", amount, from, to, ErrNotFinite)
	}
	return result, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
