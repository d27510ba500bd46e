package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"overcooked-agents/internal/domain"
)

// PostgresLedger is a write-mostly audit trail of what happened in the
// restaurant. Nothing is read back into the agents.
type PostgresLedger struct {
	DB *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{DB: db}
}

//go:embed schema.sql
var schema string

// EnsureSchema creates the ledger tables if they are missing. Every statement
// is idempotent, so it runs on each start.
func (l *PostgresLedger) EnsureSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := l.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// WriteEvent records ev. Movement events are too chatty for the ledger and
// are skipped.
func (l *PostgresLedger) WriteEvent(ctx context.Context, ev domain.Event) error {
	if ev.Type == domain.EventAgentMoved {
		return nil
	}
	_, err := l.DB.ExecContext(ctx, `
		INSERT INTO sim_events (type, agent, subject, table_no, item, quantity, amount, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, string(ev.Type), ev.Agent, ev.Subject, ev.Table, ev.Item, ev.Quantity, ev.Amount, ev.Detail, ev.At)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	if ev.Bill != nil {
		return l.UpsertBill(ctx, ev.Bill)
	}
	return nil
}

func (l *PostgresLedger) UpsertBill(ctx context.Context, b *domain.Bill) error {
	_, err := l.DB.ExecContext(ctx, `
		INSERT INTO bills (id, payer, party, item, quantity, amount_due, amount_received, change_due, hours_owed, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET amount_received = EXCLUDED.amount_received,
			change_due = EXCLUDED.change_due,
			hours_owed = EXCLUDED.hours_owed,
			status = EXCLUDED.status,
			updated_at = CURRENT_TIMESTAMP
	`, b.ID, string(b.Payer), b.Party, b.Item, b.Quantity, b.AmountDue, b.AmountReceived, b.Change, b.HoursOwed, string(b.Status), b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert bill %s: %w", b.ID, err)
	}
	return nil
}

func (l *PostgresLedger) GetBill(ctx context.Context, id uuid.UUID) (domain.Bill, error) {
	var (
		b      domain.Bill
		payer  string
		status string
	)
	err := l.DB.QueryRowContext(ctx, `
		SELECT id, payer, party, item, quantity, amount_due, amount_received, change_due, hours_owed, status, created_at
		FROM bills
		WHERE id = $1
	`, id).Scan(&b.ID, &payer, &b.Party, &b.Item, &b.Quantity, &b.AmountDue, &b.AmountReceived, &b.Change, &b.HoursOwed, &status, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Bill{}, domain.ErrBillNotFound
	}
	if err != nil {
		return domain.Bill{}, err
	}
	b.Payer = domain.PayerRole(payer)
	b.Status = domain.BillStatus(status)
	return b, nil
}

func (l *PostgresLedger) ListBills(ctx context.Context, party string, limit int) ([]domain.Bill, error) {
	rows, err := l.DB.QueryContext(ctx, `
		SELECT id, payer, party, item, quantity, amount_due, amount_received, change_due, hours_owed, status, created_at
		FROM bills
		WHERE party = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, party, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var (
			b      domain.Bill
			payer  string
			status string
		)
		if err := rows.Scan(&b.ID, &payer, &b.Party, &b.Item, &b.Quantity, &b.AmountDue, &b.AmountReceived, &b.Change, &b.HoursOwed, &status, &b.CreatedAt); err != nil {
			continue
		}
		b.Payer = domain.PayerRole(payer)
		b.Status = domain.BillStatus(status)
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
