package handlers

//go:generate mockgen -source=update_user.go -destination=update_user_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/models"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, firstName, lastName *string) bool
}

// NewUpdateUserHandler returns an HTTP handler updating a user's names.
// @Summary Update user
// @Description Updates first and/or last name. Omitted fields keep their value; if both are omitted nothing is written.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "New names"
// @Success 200 {object} models.SuccessResponse "Update outcome"
// @Failure 400 {object} models.ErrorResponse "Invalid user id / invalid body"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			logger.Log.Warnw("invalid user id", "id", r.URL.Path)
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req models.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Log.Warnw("failed to decode update user request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if isEmpty(req.FirstName) && isEmpty(req.LastName) {
			writeJSON(w, http.StatusOK, models.SuccessResponse{Success: false})
			return
		}

		ok := svc.Update(r.Context(), id, req.FirstName, req.LastName)
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: ok})
	}
}

func isEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
