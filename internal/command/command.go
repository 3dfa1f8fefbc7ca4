// Package command turns a console input line into a typed command.
package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"currency-console/internal"
)

// Command is one of Load, List, Convert, Quit or Unknown.
type Command interface {
	Name() string
}

// Load fetches a snapshot. With neither Date nor Latest set the date is
// picked interactively.
type Load struct {
	Date   *internal.Date
	Latest bool
}

// List prints the snapshot rebased onto Base, picked interactively when nil.
type List struct {
	Base *internal.CurrencyCode
}

// Convert converts Amount of From into To. Nil fields are prompted for.
type Convert struct {
	From   *internal.CurrencyCode
	To     *internal.CurrencyCode
	Amount *float64
}

type Quit struct{}

type Unknown struct {
	Input string
}

func (c Load) Name() string {
	if c.Latest {
		return "latest"
	}
	return "load"
}

func (List) Name() string    { return "list" }
func (Convert) Name() string { return "convert" }
func (Quit) Name() string    { return "quit" }
func (Unknown) Name() string { return "unknown" }

// Parse never fails on unrecognized input, it returns Unknown instead. An
// error is returned only for a recognized command whose date or amount
// argument is malformed.
func Parse(line string) (Command, error) {
	input := strings.TrimSpace(line)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Unknown{Input: input}, nil
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch {
	case verb == "load" && len(args) == 0:
		return Load{}, nil
	case verb == "load" && len(args) == 1:
		date, err := internal.ParseDate(args[0])
		if err != nil {
			return nil, err
		}
		return Load{Date: &date}, nil
	case verb == "latest" && len(args) == 0:
		return Load{Latest: true}, nil
	case verb == "list" && len(args) == 0:
		return List{}, nil
	case verb == "list" && len(args) == 1:
		base, err := internal.NewCurrencyCode(args[0])
		if err != nil {
			return Unknown{Input: input}, nil
		}
		return List{Base: &base}, nil
	case verb == "convert" && len(args) == 0:
		return Convert{}, nil
	case verb == "convert" && len(args) == 3:
		from, err := internal.NewCurrencyCode(args[0])
		if err != nil {
			return Unknown{Input: input}, nil
		}
		to, err := internal.NewCurrencyCode(args[1])
		if err != nil {
			return Unknown{Input: input}, nil
		}
		amount, err := ParseAmount(args[2])
		if err != nil {
			return nil, err
		}
		return Convert{From: &from, To: &to, Amount: &amount}, nil
	case verb == "quit" && len(args) == 0:
		return Quit{}, nil
	default:
		return Unknown{Input: input}, nil
	}
}

// ParseAmount accepts any finite real number.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w %q", internal.ErrInvalidAmount, s)
	}
	return f, nil
}
