package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitelog/internal/http/api"
	mw "sitelog/internal/http/middleware"
	"sitelog/internal/lib/access"
	"sitelog/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func NewLogger() *slog.Logger {
	return sl.NewDiscardLogger()
}

func DecodeErrorResponse(t *testing.T, body *bytes.Buffer) api.ErrorResponse {
	var resp api.ErrorResponse
	err := json.NewDecoder(body).Decode(&resp)
	assert.NoError(t, err)
	return resp
}

// NewRequest builds a request carrying actor in its context, as the auth
// middleware would.
func NewRequest(method, target string, body []byte, actor access.Actor) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(mw.WithActor(req.Context(), actor))
}

// WithURLParam attaches a chi route parameter to req.
func WithURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
