package gateway

import (
	"context"
	"fmt"

	"prism-terminal/internal/db"
)

// MessageArchive stores accepted messages in sqlite.
type MessageArchive struct {
	db *db.DB
}

// NewMessageArchive creates an archive backed by the given database.
func NewMessageArchive(database *db.DB) *MessageArchive {
	return &MessageArchive{db: database}
}

// Record inserts one message row.
func (a *MessageArchive) Record(ctx context.Context, msg Message, delivered bool) error {
	deliveredFlag := 0
	if delivered {
		deliveredFlag = 1
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, body, delivered, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Body, deliveredFlag, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// Recent returns the newest messages, most recent first.
func (a *MessageArchive) Recent(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT id, name, body, created_at FROM messages
		ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}
