package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Kind int

const (
	KindAuth Kind = iota + 1
	KindValidation
	KindNotFound
	KindUpstream
	KindStore
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap сохраняет текст ошибки коллаборатора как есть — он уходит клиенту дословно.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}

	switch e.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON отвечает телом {"error": "<текст>"} со статусом по таксономии.
func WriteJSON(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
