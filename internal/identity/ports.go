package identity

import "context"

// Principal — авторизованный пользователь запроса.
// Из провайдера нам нужен только id.
type Principal struct {
	ID string `json:"id"`
}

type Provider interface {
	// Resolve проверяет bearer-токен у провайдера идентичности.
	// Невалидный токен → apperr.KindAuth, сбой транспорта → apperr.KindInternal.
	Resolve(ctx context.Context, token string) (*Principal, error)
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(ctxKey{}).(*Principal)
	return p
}
