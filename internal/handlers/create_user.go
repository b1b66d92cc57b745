package handlers

//go:generate mockgen -source=create_user.go -destination=create_user_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, firstName, lastName string) (*models.User, error)
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create user
// @Description Creates a user. Both names are required.
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.CreateUserRequest true "User names"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} models.ErrorResponse "Missing name / invalid body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCreateUserRequest(r)
		if err != nil {
			logger.Log.Warnw("failed to decode create user request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validate.Struct(req); err != nil {
			verr := validationError(err)
			logger.Log.Warnw("invalid create user request", "error", verr)
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}

		user, err := svc.Create(r.Context(), req.FirstName, req.LastName)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// decodeCreateUserRequest reads a JSON body, or form fields for HTML form posts.
func decodeCreateUserRequest(r *http.Request) (models.CreateUserRequest, error) {
	var req models.CreateUserRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.FirstName = r.PostForm.Get("first_name")
		req.LastName = r.PostForm.Get("last_name")
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}
