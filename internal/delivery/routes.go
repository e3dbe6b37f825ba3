package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"

	"github.com/pavelgrm/botchat/internal/chat"
	"github.com/pavelgrm/botchat/internal/identity"
)

func RegisterRoutes(
	r chi.Router,
	basePath string,
	hChat *chat.Handler,
	provider identity.Provider,
) {
	r.Route(basePath, func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			AuthMiddleware(provider),
		)

		// --- диалоги ---
		pr.Get("/", hChat.ListBots)
		pr.Post("/messages", hChat.SendMessage)
		pr.Get("/messages", hChat.GetHistory)
	})
}
