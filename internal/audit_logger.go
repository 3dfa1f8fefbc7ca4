package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	StatusOK              = "ok"
	StatusNotLoaded       = "not_loaded"
	StatusUnknownCurrency = "unknown_currency"
	StatusProviderError   = "provider_error"
	StatusFetchError      = "fetch_error"
	StatusInvalidAmount   = "invalid_amount"
	StatusInvalidDate     = "invalid_date"
	StatusUnknownCommand  = "unknown_command"
	StatusZeroRate        = "zero_rate"
	StatusNotFinite       = "not_finite"
	StatusFailed          = "failed"
)

// CommandRecord is one executed console command.
type CommandRecord struct {
	SessionID uuid.UUID
	Command   string
	Status    string
	DateAsOf  *Date
}

type CommandAuditLogger interface {
	LogCommand(ctx context.Context, sessionID uuid.UUID, command string, cmdErr error, dateAsOf *Date) error
}

type AuditLogStorage interface {
	Insert(ctx context.Context, rec CommandRecord) error
}

// SnapshotArchive receives every successfully loaded snapshot.
type SnapshotArchive interface {
	Archive(ctx context.Context, sessionID uuid.UUID, snapshot *RateSnapshot) error
}

func NewStorageAuditLogger(storage AuditLogStorage) *StorageAuditLogger {
	return &StorageAuditLogger{auditLogStorage: storage}
}

type StorageAuditLogger struct {
	auditLogStorage AuditLogStorage
}

func (l *StorageAuditLogger) LogCommand(ctx context.Context, sessionID uuid.UUID, command string, cmdErr error, dateAsOf *Date) error {
	c := strings.ToLower(strings.TrimSpace(command))
	if c == "" {
		c = "unknown"
	}

	rec := CommandRecord{
		SessionID: sessionID,
		Command:   c,
		Status:    StatusOf(cmdErr),
		DateAsOf:  dateAsOf,
	}
	if err := l.auditLogStorage.Insert(ctx, rec); err != nil {
		return fmt.Errorf("log command %s: %w", c, err)
	}
	return nil
}

// StatusOf classifies a command outcome for the audit log.
func StatusOf(err error) string {
	var (
		unknown  *UnknownCurrencyError
		provider *ProviderError
		fetch    *FetchError
	)
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNotLoaded):
		return StatusNotLoaded
	case errors.As(err, &unknown):
		return StatusUnknownCurrency
	case errors.As(err, &provider):
		return StatusProviderError
	case errors.As(err, &fetch):
		return StatusFetchError
	case errors.Is(err, ErrInvalidAmount):
		return StatusInvalidAmount
	case errors.Is(err, ErrInvalidDate):
		return StatusInvalidDate
	case errors.Is(err, ErrUnknownCommand):
		return StatusUnknownCommand
	case errors.Is(err, ErrZeroRate):
		return StatusZeroRate
	case errors.Is(err, ErrNotFinite):
		return StatusNotFinite
	default:
		return StatusFailed
	}
}
