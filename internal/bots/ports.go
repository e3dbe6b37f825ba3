package bots

import "context"

// Bot — сконфигурированный персонаж со своим системным промптом.
// Каталог read-only: записи заводятся напрямую в БД, ядро их не меняет.
type Bot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Prompt    string `json:"prompt"`
}

type Repo interface {
	ListAll(ctx context.Context) ([]*Bot, error)

	// Get возвращает sql.ErrNoRows, если бота нет.
	Get(ctx context.Context, botID string) (*Bot, error)
}
