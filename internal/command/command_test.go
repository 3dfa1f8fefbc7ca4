package command_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-console/internal"
	"currency-console/internal/command"
)

func code(s string) *internal.CurrencyCode {
	c := internal.CurrencyCode(s)
	return &c
}

func amount(f float64) *float64 { return &f }

func TestParse(t *testing.T) {
	date := internal.Date{Time: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name  string
		input string
		want  command.Command
	}{
		{"load", "load", command.Load{}},
		{"load with date", "load 2024-12-25", command.Load{Date: &date}},
		{"latest", "latest", command.Load{Latest: true}},
		{"list", "list", command.List{}},
		{"list with base", "list EUR", command.List{Base: code("EUR")}},
		{"list lower case base", "list eur", command.List{Base: code("EUR")}},
		{"convert", "convert", command.Convert{}},
		{"convert with args", "convert EUR GBP 90", command.Convert{From: code("EUR"), To: code("GBP"), Amount: amount(90)}},
		{"convert fractional", "convert usd jpy 12.5", command.Convert{From: code("USD"), To: code("JPY"), Amount: amount(12.5)}},
		{"convert signed", "convert USD JPY -3", command.Convert{From: code("USD"), To: code("JPY"), Amount: amount(-3)}},
		{"quit", "quit", command.Quit{}},
		{"surrounding spaces", "  quit  ", command.Quit{}},
		{"upper case verb", "LATEST", command.Load{Latest: true}},
		{"empty", "", command.Unknown{Input: ""}},
		{"unknown verb", "rates", command.Unknown{Input: "rates"}},
		{"latest with args", "latest now", command.Unknown{Input: "latest now"}},
		{"list bad code", "list EURO", command.Unknown{Input: "list EURO"}},
		{"list too many", "list EUR USD", command.Unknown{Input: "list EUR USD"}},
		{"convert two args", "convert EUR GBP", command.Unknown{Input: "convert EUR GBP"}},
		{"convert bad code", "convert EU GBP 1", command.Unknown{Input: "convert EU GBP 1"}},
		{"quit with args", "quit now", command.Unknown{Input: "quit now"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"bad date", "load 2024-13-01", internal.ErrInvalidDate},
		{"not a date", "load yesterday", internal.ErrInvalidDate},
		{"bad amount", "convert EUR GBP ten", internal.ErrInvalidAmount},
		{"nan amount", "convert EUR GBP NaN", internal.ErrInvalidAmount},
		{"inf amount", "convert EUR GBP +Inf", internal.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.input)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestCommand_Name(t *testing.T) {
	assert.Equal(t, "load", command.Load{}.Name())
	assert.Equal(t, "latest", command.Load{Latest: true}.Name())
	assert.Equal(t, "list", command.List{}.Name())
	assert.Equal(t, "convert", command.Convert{}.Name())
	assert.Equal(t, "quit", command.Quit{}.Name())
	assert.Equal(t, "unknown", command.Unknown{}.Name())
}
