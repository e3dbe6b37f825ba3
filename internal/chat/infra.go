package chat

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type messageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Insert(ctx context.Context, in InsertInput) (*Message, error) {
	var m Message

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO messages (
			id,
			bot_id,
			user_id,
			text,
			from_user
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING
			id,
			bot_id,
			user_id,
			text,
			from_user,
			created_at
	`,
		uuid.NewString(),
		in.BotID,
		in.UserID,
		in.Text,
		in.FromUser,
	).Scan(
		&m.ID,
		&m.BotID,
		&m.UserID,
		&m.Text,
		&m.FromUser,
		&m.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *messageRepo) ListByBot(ctx context.Context, botID, userID string, limit int) ([]*Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, bot_id, user_id, text, from_user, created_at
		FROM messages
		WHERE bot_id = $1 AND user_id = $2
		ORDER BY created_at ASC
		LIMIT $3
	`, botID, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Message

	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID,
			&m.BotID,
			&m.UserID,
			&m.Text,
			&m.FromUser,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}

	return out, rows.Err()
}

func (r *messageRepo) LatestPerBot(ctx context.Context, userID string) (map[string]*Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ON (bot_id)
			id, bot_id, user_id, text, from_user, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY bot_id, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*Message)

	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID,
			&m.BotID,
			&m.UserID,
			&m.Text,
			&m.FromUser,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out[m.BotID] = &m
	}

	return out, rows.Err()
}
