package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/pavelgrm/botchat/internal/ai"
	"github.com/pavelgrm/botchat/internal/bots"
	"github.com/pavelgrm/botchat/internal/chat"
	"github.com/pavelgrm/botchat/internal/config"
	"github.com/pavelgrm/botchat/internal/delivery"
	"github.com/pavelgrm/botchat/internal/identity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// sql.Open ленивый: без DATABASE_URL процесс стартует,
	// а запросы упадут уже на обработчиках
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "db ping failed, queries will error until it recovers",
			Service: "botchat",
			Error:   err,
		})
	}

	// =========================================================================
	// CLIENTS
	// =========================================================================

	identityClient := identity.NewClient(cfg.AuthURL, cfg.AuthAnonKey)
	openAIClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIOrgID, cfg.OpenAIProjectID)

	// =========================================================================
	// REPOSITORIES / SERVICES
	// =========================================================================

	botRepo := bots.NewRepo(db)
	messageRepo := chat.NewMessageRepo(db)

	chatService := chat.NewService(messageRepo, botRepo, openAIClient)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	var allowedOrigins []string
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	chatHandler := chat.NewHandler(chatService, zl)

	delivery.RegisterRoutes(r, cfg.BasePath, chatHandler, identityClient)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "botchat",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
