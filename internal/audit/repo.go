// Package audit keeps a journal of the mutations issued from the admin.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Action string

const (
	ActionProductAdd    Action = "product.add"
	ActionProductUpdate Action = "product.update"
	ActionProductRemove Action = "product.remove"
	ActionOrderStatus   Action = "order.status"
	ActionOrderPayment  Action = "order.payment"
)

type Entry struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id,omitempty"`
	Action    Action    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

func NewEntry(action Action, target, detail, requestID string) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Action:    action,
		Target:    target,
		Detail:    detail,
		At:        time.Now().UTC(),
	}
}

type Repository interface {
	Record(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}

const schema = `
CREATE TABLE IF NOT EXISTS admin_audit (
	id         UUID PRIMARY KEY,
	request_id TEXT NOT NULL DEFAULT '',
	action     TEXT NOT NULL,
	target     TEXT NOT NULL DEFAULT '',
	detail     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
)`

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, schema)
	return err
}

func (r *PGRepo) Record(ctx context.Context, e *Entry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO admin_audit (id, request_id, action, target, detail, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, e.ID, e.RequestID, string(e.Action), e.Target, e.Detail, e.At)
	return err
}

func (r *PGRepo) Recent(ctx context.Context, limit int) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id::text, request_id, action, target, detail, created_at
		FROM admin_audit
		ORDER BY created_at DESC
		LIMIT $1
	`, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var action string
		if err := rows.Scan(&e.ID, &e.RequestID, &action, &e.Target, &e.Detail, &e.At); err != nil {
			return nil, err
		}
		e.Action = Action(action)
		out = append(out, e)
	}
	return out, rows.Err()
}

// MemRepo keeps the last entries in memory and logs each one. It is used
// when no database is configured.
type MemRepo struct {
	mu      sync.Mutex
	size    int
	entries []Entry
	log     *logrus.Logger
}

func NewMemRepo(size int, log *logrus.Logger) *MemRepo {
	if size <= 0 {
		size = 100
	}
	return &MemRepo{size: size, log: log}
}

func (r *MemRepo) Record(_ context.Context, e *Entry) error {
	r.mu.Lock()
	r.entries = append(r.entries, *e)
	if len(r.entries) > r.size {
		r.entries = r.entries[len(r.entries)-r.size:]
	}
	r.mu.Unlock()

	if r.log != nil {
		r.log.WithFields(logrus.Fields{
			"rid":    e.RequestID,
			"action": e.Action,
			"target": e.Target,
		}).Info(e.Detail)
	}
	return nil
}

// Recent returns newest first.
func (r *MemRepo) Recent(_ context.Context, limit int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit = clampLimit(limit)
	out := make([]Entry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
