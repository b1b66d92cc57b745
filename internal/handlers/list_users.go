package handlers

//go:generate mockgen -source=list_users.go -destination=list_users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-users/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns every user ordered by id.
// @Tags users
// @Produce json
// @Success 200 {object} models.UsersResponse "All users"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if users == nil {
			users = []models.User{}
		}

		writeJSON(w, http.StatusOK, models.UsersResponse{Users: users})
	}
}
