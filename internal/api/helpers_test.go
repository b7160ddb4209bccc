package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/api/shared"
)

var fixedNow = time.Date(2024, 4, 10, 9, 30, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequest builds an authenticated request. A nil userID leaves the
// request unauthenticated; pathID fills the {id} route parameter.
func newRequest(method, target, body string, userID uuid.UUID, pathID string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)

	ctx := r.Context()
	if userID != uuid.Nil {
		ctx = shared.WithUserID(ctx, userID)
	}
	rctx := chi.NewRouteContext()
	if pathID != "" {
		rctx.URLParams.Add("id", pathID)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
