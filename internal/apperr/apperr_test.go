package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{New(KindAuth, "Unauthorized"), http.StatusUnauthorized},
		{New(KindValidation, "userId is required"), http.StatusBadRequest},
		{New(KindNotFound, "bot not found"), http.StatusNotFound},
		{Wrap(KindUpstream, errors.New("rate limited")), http.StatusInternalServerError},
		{Wrap(KindStore, errors.New("connection refused")), http.StatusInternalServerError},
		{Wrap(KindInternal, errors.New("boom")), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err))
	}
}

func TestStatusOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("send: %w", New(KindNotFound, "bot not found"))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestWrap_KeepsCollaboratorText(t *testing.T) {
	orig := errors.New(`pq: relation "messages" does not exist`)
	assert.Equal(t, orig.Error(), Wrap(KindStore, orig).Error())
	assert.ErrorIs(t, Wrap(KindStore, orig), orig)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, New(KindAuth, "Unauthorized"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
