package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"currency-console/internal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SnapshotArchive keeps every snapshot loaded by a session. Rows are only
// written, the console never reads them back.
type SnapshotArchive struct {
	pgpool *pgxpool.Pool
}

func NewSnapshotArchive(pgpool *pgxpool.Pool) *SnapshotArchive {
	return &SnapshotArchive{pgpool: pgpool}
}

type rateRow struct {
	quote string
	rate  string
}

func (a *SnapshotArchive) Archive(ctx context.Context, sessionID uuid.UUID, snapshot *internal.RateSnapshot) error {
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}
	asOf, ok := asOfDate(snapshot.Date())
	if !ok {
		return errors.New("as_of_date is empty")
	}
	base := snapshot.Base().String()

	rows := snapshotRows(snapshot)
	if len(rows) == 0 {
		return nil
	}

	tx, err := a.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
insert into rate_snapshot (session_id, base_ccy, quote_ccy, as_of_date, rate, loaded_at)
values ($1::uuid, $2, $3, $4::date, $5::numeric, now())
on conflict (session_id, base_ccy, quote_ccy, as_of_date)
do update set
  rate = excluded.rate,
  loaded_at = now();
`, sessionID.String(), base, r.quote, asOf, r.rate)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("archive %s @%s: %w", base, asOf.Format("2006-01-02"), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// snapshotRows renders the rates in code order as exact numeric text.
func snapshotRows(s *internal.RateSnapshot) []rateRow {
	codes := s.Currencies()
	out := make([]rateRow, 0, len(codes))
	for _, code := range codes {
		rate, _ := s.Rate(code)
		out = append(out, rateRow{quote: code.String(), rate: decimal.NewFromFloat(rate).String()})
	}
	return out
}

func asOfDate(d internal.Date) (time.Time, bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
}
