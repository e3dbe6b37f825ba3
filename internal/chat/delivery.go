package chat

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/pavelgrm/botchat/internal/apperr"
	"github.com/pavelgrm/botchat/internal/camelkeys"
	"github.com/pavelgrm/botchat/internal/identity"
)

type Handler struct {
	svc Service
	log *logger.ZapLogger
}

func NewHandler(svc Service, log *logger.ZapLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) ListBots(w http.ResponseWriter, r *http.Request) {
	p := identity.FromContext(r.Context())
	if p == nil || p.ID == "" {
		apperr.WriteJSON(w, apperr.New(apperr.KindValidation, "userId is required"))
		return
	}

	previews, err := h.svc.ListBots(r.Context(), p.ID)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "list bots failed", Error: err})
		apperr.WriteJSON(w, err)
		return
	}

	h.writeJSON(w, previews)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	p := identity.FromContext(r.Context())
	if p == nil || p.ID == "" {
		apperr.WriteJSON(w, apperr.New(apperr.KindValidation, "userId is required"))
		return
	}

	var req struct {
		Text  string `json:"text"`
		BotID string `json:"botId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.WriteJSON(w, apperr.New(apperr.KindValidation, "invalid json"))
		return
	}

	msg, err := h.svc.Send(r.Context(), p.ID, req.BotID, req.Text)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "send message failed", Error: err})
		apperr.WriteJSON(w, err)
		return
	}

	h.writeJSON(w, msg)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	p := identity.FromContext(r.Context())
	if p == nil || p.ID == "" {
		apperr.WriteJSON(w, apperr.New(apperr.KindValidation, "userId is required"))
		return
	}

	botID := r.URL.Query().Get("botId")

	msgs, err := h.svc.History(r.Context(), p.ID, botID)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "history failed", Error: err})
		apperr.WriteJSON(w, err)
		return
	}

	h.writeJSON(w, msgs)
}

// writeJSON отдаёт тело с camelCase-ключами — наружу snake_case не уходит.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	body, err := camelkeys.Marshal(v)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "encode response failed", Error: err})
		apperr.WriteJSON(w, apperr.Wrap(apperr.KindInternal, err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
