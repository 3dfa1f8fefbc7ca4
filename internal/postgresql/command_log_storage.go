package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"currency-console/internal"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommandLogStorage struct {
	pgpool *pgxpool.Pool
}

func NewCommandLogStorage(pgpool *pgxpool.Pool) *CommandLogStorage {
	return &CommandLogStorage{pgpool: pgpool}
}

func (s *CommandLogStorage) Insert(ctx context.Context, rec internal.CommandRecord) error {
	command := strings.TrimSpace(rec.Command)
	if command == "" {
		command = "unknown"
	}

	var asOf *time.Time
	if rec.DateAsOf != nil {
		if t, ok := asOfDate(*rec.DateAsOf); ok {
			asOf = &t
		}
	}

	_, err := s.pgpool.Exec(ctx, `
insert into command_log (session_id, command, status, date_as_of)
values ($1::uuid, $2, $3, $4::date);
`, rec.SessionID.String(), command, rec.Status, asOf)
	if err != nil {
		return fmt.Errorf("insert command_log: %w", err)
	}
	return nil
}
