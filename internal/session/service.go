// Package session keeps the currently loaded rate snapshot and answers
// queries against it.
package session

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"currency-console/internal"
)

// Service is not safe for concurrent use. Commands are executed one at a time.
type Service struct {
	id      uuid.UUID
	fetcher internal.Fetcher
	archive internal.SnapshotArchive
	logger  log.Logger

	current *internal.RateSnapshot
}

type Option func(*Service)

func WithLogger(logger log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithArchive hands every loaded snapshot to archive. Archive failures are
// logged and do not fail the load.
func WithArchive(archive internal.SnapshotArchive) Option {
	return func(s *Service) { s.archive = archive }
}

func WithID(id uuid.UUID) Option {
	return func(s *Service) { s.id = id }
}

func New(fetcher internal.Fetcher, opts ...Option) *Service {
	s := &Service{
		id:      uuid.New(),
		fetcher: fetcher,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = log.With(s.logger, "session", s.id)
	return s
}

func (s *Service) ID() uuid.UUID { return s.id }

// LoadLatest replaces the current snapshot with the most recent one.
func (s *Service) LoadLatest(ctx context.Context) (*internal.RateSnapshot, error) {
	snapshot, err := s.fetcher.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest: %w", err)
	}
	s.replace(ctx, snapshot)
	return snapshot, nil
}

// LoadDate replaces the current snapshot with the one valid for date.
func (s *Service) LoadDate(ctx context.Context, date internal.Date) (*internal.RateSnapshot, error) {
	snapshot, err := s.fetcher.Historical(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", date, err)
	}
	s.replace(ctx, snapshot)
	return snapshot, nil
}

func (s *Service) replace(ctx context.Context, snapshot *internal.RateSnapshot) {
	s.current = snapshot
	_ = level.Debug(s.logger).Log("msg", "snapshot loaded", "base", snapshot.Base(), "date", snapshot.Date().String())

	if s.archive == nil {
		return
	}
	if err := s.archive.Archive(ctx, s.id, snapshot); err != nil {
		_ = level.Warn(s.logger).Log("msg", "archive snapshot failed", "date", snapshot.Date().String(), "err", err)
	}
}

func (s *Service) Loaded() bool { return s.current != nil }

// Current returns the loaded snapshot or ErrNotLoaded.
func (s *Service) Current() (*internal.RateSnapshot, error) {
	if s.current == nil {
		return nil, internal.ErrNotLoaded
	}
	return s.current, nil
}

// Currencies lists the codes known to the current snapshot.
func (s *Service) Currencies() ([]internal.CurrencyCode, error) {
	snapshot, err := s.Current()
	if err != nil {
		return nil, err
	}
	return snapshot.Currencies(), nil
}

// List returns the current snapshot rebased onto base. The current snapshot
// is left as it is.
func (s *Service) List(base internal.CurrencyCode) (*internal.RateSnapshot, error) {
	snapshot, err := s.Current()
	if err != nil {
		return nil, err
	}
	return snapshot.Rebase(base)
}

func (s *Service) Convert(from, to internal.CurrencyCode, amount float64) (float64, error) {
	snapshot, err := s.Current()
	if err != nil {
		return 0, err
	}
	return snapshot.Convert(from, to, amount)
}
