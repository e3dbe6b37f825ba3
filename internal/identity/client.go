package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pavelgrm/botchat/internal/apperr"
)

// Client ходит в GoTrue-совместимый провайдер (Supabase Auth).
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    http.DefaultClient,
	}
}

func (c *Client) Resolve(ctx context.Context, token string) (*Principal, error) {
	url := c.baseURL + "/auth/v1/user"

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// ok

	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		return nil, apperr.New(apperr.KindAuth, "Unauthorized")

	default:
		b, _ := io.ReadAll(resp.Body)
		return nil, apperr.Wrap(apperr.KindInternal,
			fmt.Errorf("identity provider: status %d: %s", resp.StatusCode, string(b)))
	}

	var p Principal
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, err)
	}
	if p.ID == "" {
		return nil, apperr.New(apperr.KindAuth, "Unauthorized")
	}

	return &p, nil
}
