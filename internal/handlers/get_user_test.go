package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-users/internal/models"
	"github.com/sbilibin2017/gw-users/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetUserHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "found",
			id:   "1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).
					Return(&models.User{ID: 1, FirstName: "Ada", LastName: "Lovelace"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"id": float64(1), "first_name": "Ada", "last_name": "Lovelace"},
		},
		{
			name: "not found yields empty object",
			id:   "999",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), int64(999)).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{},
		},
		{
			name: "store failure",
			id:   "1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "non-numeric id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
		{
			name:         "zero id",
			id:           "0",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
		{
			name:         "negative id",
			id:           "-5",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			NewGetUserHandler(svc)(rr, newRequest(http.MethodGet, "/users/"+tt.id, tt.id, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
