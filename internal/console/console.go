package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"

	"currency-console/internal"
	"currency-console/internal/command"
	"currency-console/internal/session"
)

const initialPrompt = "Currency query>"

type Option func(*Console)

func WithAuditLogger(audit internal.CommandAuditLogger) Option {
	return func(c *Console) { c.audit = audit }
}

func WithLogger(logger log.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// WithColor toggles colored output.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		if enabled {
			c.ok.EnableColor()
			c.fail.EnableColor()
		} else {
			c.ok.DisableColor()
			c.fail.DisableColor()
		}
	}
}

// Console runs the interactive command loop against one session.
type Console struct {
	session  *session.Service
	prompter Prompter
	out      io.Writer
	audit    internal.CommandAuditLogger
	logger   log.Logger

	ok   *color.Color
	fail *color.Color

	prompt string
}

func New(s *session.Service, p Prompter, out io.Writer, opts ...Option) *Console {
	c := &Console{
		session:  s,
		prompter: p,
		out:      out,
		logger:   log.NewNopLogger(),
		ok:       color.New(color.FgGreen),
		fail:     color.New(color.FgRed),
		prompt:   initialPrompt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prompt is the label shown before the next command.
func (c *Console) Prompt() string { return c.prompt }

// Run reads and executes commands until quit, end of input or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := c.prompter.Line(c.prompt)
		if err != nil {
			if errors.Is(err, ErrCancelled) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit := c.Execute(ctx, line); quit {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the loop should stop.
func (c *Console) Execute(ctx context.Context, line string) bool {
	cmd, err := command.Parse(line)
	name := verbOf(line)
	if err == nil {
		name = cmd.Name()
		switch cmd := cmd.(type) {
		case command.Quit:
			c.record(ctx, name, nil)
			return true
		case command.Load:
			err = c.load(ctx, cmd)
		case command.List:
			err = c.list(cmd)
		case command.Convert:
			err = c.convert(cmd)
		case command.Unknown:
			err = internal.ErrUnknownCommand
		}
	}
	if err != nil {
		c.report(name, strings.TrimSpace(line), err)
	}
	c.record(ctx, name, err)
	return false
}

func (c *Console) load(ctx context.Context, cmd command.Load) error {
	var (
		snapshot *internal.RateSnapshot
		err      error
	)
	switch {
	case cmd.Latest:
		snapshot, err = c.session.LoadLatest(ctx)
	case cmd.Date != nil:
		snapshot, err = c.session.LoadDate(ctx, *cmd.Date)
	default:
		date, perr := c.prompter.Date("Choose a date to view exchange rates from:")
		if perr != nil {
			return perr
		}
		snapshot, err = c.session.LoadDate(ctx, date)
	}
	if err != nil {
		return err
	}

	c.prompt = fmt.Sprintf("Query from: %s>", snapshot.Date())
	c.okf("Exchange rates loaded successfully!")
	return nil
}

func (c *Console) list(cmd command.List) error {
	currencies, err := c.session.Currencies()
	if err != nil {
		return err
	}

	base := cmd.Base
	if base == nil {
		code, err := c.prompter.Select("Choose a currency as base:", currencies)
		if err != nil {
			return err
		}
		base = &code
	}

	rebased, err := c.session.List(*base)
	if err != nil {
		return err
	}
	c.printSnapshot(rebased)
	return nil
}

func (c *Console) convert(cmd command.Convert) error {
	currencies, err := c.session.Currencies()
	if err != nil {
		return err
	}

	from, to, amount := cmd.From, cmd.To, cmd.Amount
	if from == nil {
		code, err := c.prompter.Select("Convert from:", currencies)
		if err != nil {
			return err
		}
		from = &code
	}
	if to == nil {
		code, err := c.prompter.Select("Convert to:", currencies)
		if err != nil {
			return err
		}
		to = &code
	}
	if amount == nil {
		v, err := c.prompter.Amount("Enter the amount you want to convert:")
		if err != nil {
			return err
		}
		amount = &v
	}

	result, err := c.session.Convert(*from, *to, *amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s %s equals %s %s.\n", formatNumber(*amount), *from, formatNumber(result), *to)
	return nil
}

func (c *Console) printSnapshot(s *internal.RateSnapshot) {
	fmt.Fprintf(c.out, "base: %s\n", s.Base())
	fmt.Fprintf(c.out, "date: %s\n", s.Date())
	for _, code := range s.Currencies() {
		rate, _ := s.Rate(code)
		fmt.Fprintf(c.out, "%s: %s\n", code, formatNumber(rate))
	}
}

func (c *Console) report(name, input string, err error) {
	var unknown *internal.UnknownCurrencyError
	switch {
	case errors.Is(err, internal.ErrUnknownCommand):
		c.failf("Unknown command: `%s`", input)
	case errors.Is(err, ErrCancelled):
		c.failf("Cancelled.")
	case errors.Is(err, internal.ErrNotLoaded):
		c.failf("You need to load the exchange rates first!")
	case errors.Is(err, internal.ErrInvalidDate):
		c.failf("Please enter a valid date!")
	case errors.Is(err, internal.ErrInvalidAmount):
		c.failf("Please enter a valid number!")
	case name == "list" && errors.As(err, &unknown):
		c.failf("Could not find currency '%s'", unknown.Code)
	case name == "load" || name == "latest":
		c.failf("Failed to load exchange rates: %s", reason(err))
	case name == "convert":
		c.failf("Failed to convert query: %s", reason(err))
	default:
		c.failf("%s", reason(err))
	}
}

func (c *Console) record(ctx context.Context, name string, cmdErr error) {
	if c.audit == nil {
		return
	}
	var dateAsOf *internal.Date
	if s, err := c.session.Current(); err == nil {
		d := s.Date()
		dateAsOf = &d
	}
	if err := c.audit.LogCommand(ctx, c.session.ID(), name, cmdErr, dateAsOf); err != nil {
		_ = level.Warn(c.logger).Log("msg", "audit command", "command", name, "err", err)
	}
}

func (c *Console) okf(format string, args ...any) {
	c.ok.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) failf(format string, args ...any) {
	c.fail.Fprintf(c.out, format+"\n", args...)
}

// reason strips the wrapping added on the way up and keeps the provider or transport message.
func reason(err error) string {
	var (
		provider *internal.ProviderError
		fetch    *internal.FetchError
		unknown  *internal.UnknownCurrencyError
	)
	switch {
	case errors.As(err, &provider):
		return provider.Error()
	case errors.As(err, &fetch):
		return fetch.Error()
	case errors.As(err, &unknown):
		return unknown.Error()
	}
	return err.Error()
}

func verbOf(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}
