package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config собирается из окружения. Отсутствие БД или провайдеров не валит
// процесс на старте — невалидные значения всплывут ошибкой вызова.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	BasePath string `env:"BASE_PATH" envDefault:"/api/chat"`

	DatabaseURL string `env:"DATABASE_URL"`

	AuthURL     string `env:"AUTH_URL"`
	AuthAnonKey string `env:"AUTH_ANON_KEY"`

	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIOrgID     string `env:"OPENAI_ORG_ID"`
	OpenAIProjectID string `env:"OPENAI_PROJECT_ID"`

	FrontendURL string `env:"FRONTEND_URL"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
