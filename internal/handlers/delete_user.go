package handlers

//go:generate mockgen -source=delete_user.go -destination=delete_user_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/models"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) bool
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.SuccessResponse "Delete outcome"
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			logger.Log.Warnw("invalid user id", "id", r.URL.Path)
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		ok := svc.Delete(r.Context(), id)
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: ok})
	}
}
