package handlers

//go:generate mockgen -source=get_user.go -destination=get_user_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/models"
	"github.com/sbilibin2017/gw-users/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler fetching a single user.
// An unknown id yields an empty object.
// @Summary Get user
// @Description Returns the user with the given id, or {} when it does not exist.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User or empty object"
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			logger.Log.Warnw("invalid user id", "id", r.URL.Path)
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		user, err := svc.Get(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeJSON(w, http.StatusOK, struct{}{})
		case err != nil:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		default:
			writeJSON(w, http.StatusOK, user)
		}
	}
}
