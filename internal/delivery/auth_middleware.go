package delivery

import (
	"net/http"
	"strings"

	"github.com/pavelgrm/botchat/internal/apperr"
	"github.com/pavelgrm/botchat/internal/identity"
)

// AuthMiddleware проверяет bearer-токен у провайдера и кладёт Principal
// в контекст запроса. Одна попытка, без ретраев.
func AuthMiddleware(provider identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				apperr.WriteJSON(w, apperr.New(apperr.KindAuth, "Unauthorized"))
				return
			}

			token := strings.TrimPrefix(h, "Bearer ")
			p, err := provider.Resolve(r.Context(), token)
			if err != nil {
				// детали сбоя провайдера клиенту не отдаём
				if apperr.StatusOf(err) == http.StatusInternalServerError {
					err = apperr.New(apperr.KindInternal, "Internal Server Error")
				}
				apperr.WriteJSON(w, err)
				return
			}

			ctx := identity.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
