package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestUpdateUserHandler(t *testing.T) {
	grace, hopper := "Grace", "Hopper"

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "both names",
			id:   "1",
			body: `{"first_name":"Grace","last_name":"Hopper"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), &grace, &hopper).Return(true)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": true},
		},
		{
			name: "first name only",
			id:   "1",
			body: `{"first_name":"Grace"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), &grace, nil).Return(true)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": true},
		},
		{
			name: "unknown user",
			id:   "42",
			body: `{"last_name":"Hopper"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(42), nil, &hopper).Return(false)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": false},
		},
		{
			name:         "no fields does not touch the store",
			id:           "1",
			body:         `{}`,
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": false},
		},
		{
			name:         "empty fields does not touch the store",
			id:           "1",
			body:         `{"first_name":"","last_name":""}`,
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": false},
		},
		{
			name:         "blank fields does not touch the store",
			id:           "1",
			body:         `{"first_name":"  ","last_name":"\t"}`,
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": false},
		},
		{
			name:         "empty body",
			id:           "1",
			body:         ``,
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"success": false},
		},
		{
			name:         "invalid json",
			id:           "1",
			body:         `{"first_name":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name:         "invalid id",
			id:           "one",
			body:         `{"first_name":"Grace"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			NewUpdateUserHandler(svc)(rr, newRequest(http.MethodPut, "/users/"+tt.id, tt.id, body(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
