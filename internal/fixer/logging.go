package fixer

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"currency-console/internal"
)

// loggingFetcher decorates an internal.Fetcher with logging
type loggingFetcher struct {
	logger log.Logger
	next   internal.Fetcher
}

// NewLoggingFetcher returns a Fetcher that logs every call to next.
func NewLoggingFetcher(logger log.Logger, next internal.Fetcher) internal.Fetcher {
	return &loggingFetcher{
		logger: logger,
		next:   next,
	}
}

func (f *loggingFetcher) Latest(ctx context.Context) (snapshot *internal.RateSnapshot, err error) {
	defer func(begin time.Time) {
		f.log("latest", "latest", snapshot, time.Since(begin), err)
	}(time.Now())
	return f.next.Latest(ctx)
}

func (f *loggingFetcher) Historical(ctx context.Context, date internal.Date) (snapshot *internal.RateSnapshot, err error) {
	defer func(begin time.Time) {
		f.log("historical", date.String(), snapshot, time.Since(begin), err)
	}(time.Now())
	return f.next.Historical(ctx, date)
}

func (f *loggingFetcher) log(method, requested string, snapshot *internal.RateSnapshot, took time.Duration, err error) {
	if err != nil {
		_ = level.Warn(f.logger).Log(
			"method", method,
			"requested", requested,
			"took", took,
			"err", err,
		)
		return
	}
	_ = level.Debug(f.logger).Log(
		"method", method,
		"requested", requested,
		"base", snapshot.Base(),
		"date", snapshot.Date().String(),
		"currencies", snapshot.Len(),
		"took", took,
	)
}
