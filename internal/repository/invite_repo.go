package repository

import (
	"context"
	"database/sql"
	"fmt"

	"lentora/internal/models"
)

type InviteSQLite struct {
	db *sql.DB
}

func NewInviteSQLite(db *sql.DB) *InviteSQLite { return &InviteSQLite{db: db} }

const (
	insertInviteSQL = `
		INSERT INTO invites (id, email, message, session_token, status, sent_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectInvitesSQL = `SELECT id, email, message, session_token, status, sent_at FROM invites ORDER BY sent_at DESC`
)

func (r *InviteSQLite) Create(ctx context.Context, inv models.Invite) error {
	_, err := r.db.ExecContext(ctx, insertInviteSQL,
		inv.ID, inv.Email, inv.Message, inv.SessionToken, inv.Status, inv.SentAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert invite for %q: %w", inv.Email, err)
	}
	return nil
}

// List returns every invite, most recent first.
func (r *InviteSQLite) List(ctx context.Context) ([]models.Invite, error) {
	rows, err := r.db.QueryContext(ctx, selectInvitesSQL)
	if err != nil {
		return nil, fmt.Errorf("select invites: %w", err)
	}
	defer rows.Close()

	var out []models.Invite
	for rows.Next() {
		var inv models.Invite
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Message, &inv.SessionToken, &inv.Status, &inv.SentAt); err != nil {
			return nil, err
		}
		inv.SentAt = inv.SentAt.UTC()
		out = append(out, inv)
	}
	return out, rows.Err()
}
