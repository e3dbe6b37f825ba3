package chat

import (
	"context"
	"time"
)

// Message — одна реплика диалога. Только вставка, без изменений и удалений.
type Message struct {
	ID        string    `json:"id"`
	BotID     string    `json:"bot_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	FromUser  bool      `json:"from_user"`
	CreatedAt time.Time `json:"created_at"`
}

// BotPreview — бот с последней репликой пользователя для сводки диалогов.
type BotPreview struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AvatarURL   string   `json:"avatar_url"`
	LastMessage *Message `json:"last_message"`
}

type InsertInput struct {
	BotID    string
	UserID   string
	Text     string
	FromUser bool
}

type MessageRepo interface {
	Insert(ctx context.Context, in InsertInput) (*Message, error)

	// ListByBot — история пары (bot, user) по created_at ASC, не больше limit.
	ListByBot(ctx context.Context, botID, userID string, limit int) ([]*Message, error)

	// LatestPerBot — последнее сообщение пользователя по каждому боту.
	LatestPerBot(ctx context.Context, userID string) (map[string]*Message, error)
}

type Service interface {
	ListBots(ctx context.Context, userID string) ([]*BotPreview, error)
	Send(ctx context.Context, userID, botID, text string) (*Message, error)
	History(ctx context.Context, userID, botID string) ([]*Message, error)
}
