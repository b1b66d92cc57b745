package handlers

//go:generate mockgen -source=index.go -destination=index_mock.go -package=handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/models"
)

// PageRenderer renders the user listing page.
type PageRenderer interface {
	Render(ctx context.Context, w io.Writer, users []models.User) error
}

// NewIndexHandler returns an HTTP handler rendering the HTML listing of all users.
func NewIndexHandler(svc UserLister, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		// Render into a buffer so a template failure never produces a partial page.
		var buf bytes.Buffer
		if err := renderer.Render(r.Context(), &buf, users); err != nil {
			logger.Log.Errorw("failed to render index page", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}
