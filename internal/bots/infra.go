package bots

import (
	"context"
	"database/sql"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) ListAll(ctx context.Context) ([]*Bot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, avatar_url, prompt
		FROM bots
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Bot

	for rows.Next() {
		var b Bot
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.AvatarURL,
			&b.Prompt,
		); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}

	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, botID string) (*Bot, error) {
	var b Bot

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, avatar_url, prompt
		FROM bots
		WHERE id = $1
	`, botID).Scan(
		&b.ID,
		&b.Name,
		&b.AvatarURL,
		&b.Prompt,
	)

	if err != nil {
		return nil, err
	}

	return &b, nil
}
