package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoaded is returned by queries issued before any snapshot was loaded.
	ErrNotLoaded = errors.New("exchange rates not loaded")

	ErrInvalidAmount = errors.New("invalid amount")

	ErrZeroRate  = errors.New("cannot invert zero rate")
	ErrNotFinite = errors.New("result is not a finite number")

	// ErrUnknownCommand marks input that matches no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// UnknownCurrencyError names a code missing from a snapshot's rates.
type UnknownCurrencyError struct {
	Code CurrencyCode
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("Could not find '%s' in rates", e.Code)
}

// FetchError is a transport failure or an unparsable provider response.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ProviderError is an explicit failure payload sent by the rate provider.
type ProviderError struct {
	Code int     `json:"code"`
	Type string  `json:"type"`
	Info *string `json:"info"`
}

func (e *ProviderError) Error() string {
	info := "None"
	if e.Info != nil {
		info = *e.Info
	}
	return fmt.Sprintf("Fixer error, Code: %d, Type: %s, Info: %s", e.Code, e.Type, info)
}
