package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migrations struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Migrations {
	return &Migrations{pool: pool}
}

func (m *Migrations) Setup(ctx context.Context) error {
	if err := m.setupSnapshotTable(ctx); err != nil {
		return fmt.Errorf("setup rate_snapshot: %w", err)
	}
	if err := m.setupCommandLogTable(ctx); err != nil {
		return fmt.Errorf("setup command_log: %w", err)
	}
	return nil
}

func (m *Migrations) setupSnapshotTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists rate_snapshot (
  session_id uuid not null,
  base_ccy   char(3) not null,
  quote_ccy  char(3) not null,
  as_of_date date not null,
  rate       numeric not null,
  loaded_at  timestamptz not null default now(),
  primary key (session_id, base_ccy, quote_ccy, as_of_date)
);

create index if not exists idx_rate_snapshot_as_of_date
  on rate_snapshot (as_of_date desc, base_ccy);
`)
	if err != nil {
		return fmt.Errorf("ensure table rate_snapshot: %w", err)
	}
	return nil
}

func (m *Migrations) setupCommandLogTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists command_log (
  id          bigserial primary key,
  session_id  uuid not null,
  command     text not null,
  status      text not null,
  date_as_of  date,
  created_at  timestamptz not null default now()
);

create index if not exists idx_command_log_session_created_at
  on command_log (session_id, created_at);
`)
	if err != nil {
		return fmt.Errorf("ensure table command_log: %w", err)
	}
	return nil
}
