package chat

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pavelgrm/botchat/internal/ai"
	"github.com/pavelgrm/botchat/internal/apperr"
	"github.com/pavelgrm/botchat/internal/bots"
)

const historyLimit = 50

type service struct {
	messages MessageRepo
	bots     bots.Repo
	ai       ai.CompletionClient
}

func NewService(messages MessageRepo, botRepo bots.Repo, aiClient ai.CompletionClient) Service {
	return &service{
		messages: messages,
		bots:     botRepo,
		ai:       aiClient,
	}
}

func (s *service) ListBots(ctx context.Context, userID string) ([]*BotPreview, error) {
	all, err := s.bots.ListAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err)
	}

	latest, err := s.messages.LatestPerBot(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err)
	}

	out := make([]*BotPreview, 0, len(all))
	for _, b := range all {
		out = append(out, &BotPreview{
			ID:          b.ID,
			Name:        b.Name,
			AvatarURL:   b.AvatarURL,
			LastMessage: latest[b.ID], // nil, если диалога ещё не было
		})
	}

	return out, nil
}

// Send — основной круг: вставили входящее, взяли промпт бота, сходили в GPT,
// вставили ответ. Шаги строго последовательные, транзакции нет: при сбое
// после первой вставки входящее сообщение остаётся без ответа.
func (s *service) Send(ctx context.Context, userID, botID, text string) (*Message, error) {
	if _, err := s.messages.Insert(ctx, InsertInput{
		BotID:    botID,
		UserID:   userID,
		Text:     text,
		FromUser: true,
	}); err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err)
	}

	bot, err := s.bots.Get(ctx, botID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "bot not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, err)
	}

	reply, err := s.ai.Complete(ctx, bot.Prompt, text)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, err)
	}

	// текст ответа сохраняется дословно
	out, err := s.messages.Insert(ctx, InsertInput{
		BotID:    botID,
		UserID:   userID,
		Text:     reply,
		FromUser: false,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err)
	}

	return out, nil
}

func (s *service) History(ctx context.Context, userID, botID string) ([]*Message, error) {
	msgs, err := s.messages.ListByBot(ctx, botID, userID, historyLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err)
	}
	if msgs == nil {
		msgs = []*Message{}
	}
	return msgs, nil
}
