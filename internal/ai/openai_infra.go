package ai

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient не падает при пустом ключе: процесс должен стартовать
// и без настроенного провайдера, невалидный ключ всплывёт ошибкой вызова.
func NewOpenAIClient(apiKey, orgID, projectID string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.OrgID = orgID

	// у go-openai нет поля project — докидываем заголовок сами
	if projectID != "" {
		cfg.HTTPClient = &http.Client{
			Transport: projectTransport{project: projectID, base: http.DefaultTransport},
		}
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

type projectTransport struct {
	project string
	base    http.RoundTripper
}

func (t projectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("OpenAI-Project", t.project)
	return t.base.RoundTrip(clone)
}
