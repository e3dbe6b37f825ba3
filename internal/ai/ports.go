package ai

import "context"

type CompletionClient interface {
	// Complete отправляет пару system+user одним запросом (без стрима)
	// и возвращает текст первого choice.
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}
