package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scan-kart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		requestBody    string
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    `{"email":"caisse@example.com","password":"secret"}`,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid credentials",
			requestBody:    `{"email":"caisse@example.com","password":"wrong"}`,
			mockError:      model.NewDomainError(model.ErrCodeInvalidCredentials, "Mot de passe incorrect"),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   model.ErrCodeInvalidCredentials,
			expectService:  true,
		},
		{
			name:           "Missing fields",
			requestBody:    `{"email":""}`,
			mockError:      model.ErrMissingCredentials,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
			expectService:  true,
		},
		{
			name:           "Login service unreachable",
			requestBody:    `{"email":"caisse@example.com","password":"secret"}`,
			mockError:      errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			handler := NewAuthHandler(svc, logger)
			if tt.expectService {
				svc.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.requestBody))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			} else {
				assert.JSONEq(t, `{"loggedIn":true}`, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		requestBody    string
		mockError      error
		expectedStatus int
		expectedCode   string
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    `{"email":"nouveau@example.com","password":"secret"}`,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Rejected by backend",
			requestBody:    `{"email":"caisse@example.com","password":"secret"}`,
			mockError:      model.NewDomainError(model.ErrCodeSignupRejected, "email: Cette valeur est déjà utilisée."),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   model.ErrCodeSignupRejected,
			expectService:  true,
		},
		{
			name:           "Missing fields",
			requestBody:    `{"password":"secret"}`,
			mockError:      model.ErrMissingCredentials,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			handler := NewAuthHandler(svc, logger)
			if tt.expectService {
				svc.On("Signup", mock.Anything, mock.AnythingOfType("*model.SignupRequest")).Return(tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString(tt.requestBody))
			w := httptest.NewRecorder()

			handler.Signup(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
			} else {
				assert.JSONEq(t, `{"created":true}`, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)
	handler := NewAuthHandler(svc, zerolog.Nop())
	svc.On("Logout").Return()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedIn":false}`, w.Body.String())
	svc.AssertExpectations(t)
}
