package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account_backend/internal/feature/accounts/domain/entity"
	"account_backend/internal/feature/accounts/usecase"
	jwtmw "account_backend/internal/platform/jwt"
)

// mockAccountUsecase is a mock implementation of the AccountUsecase interface.
type mockAccountUsecase struct {
	RegisterFunc      func(ctx context.Context, firstName, lastName, email, password string) error
	LoginFunc         func(ctx context.Context, name, email, password string) (string, error)
	GetProfileFunc    func(ctx context.Context, id string) (*entity.User, error)
	DeleteAccountFunc func(ctx context.Context, id string) error
}

func (m *mockAccountUsecase) Register(ctx context.Context, firstName, lastName, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, firstName, lastName, email, password)
	}
	return nil // Default: success
}

func (m *mockAccountUsecase) Login(ctx context.Context, name, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, name, email, password)
	}
	return "", errors.New("login failed") // Default: failure
}

func (m *mockAccountUsecase) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockAccountUsecase) DeleteAccount(ctx context.Context, id string) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, id)
	}
	return usecase.ErrUserNotFound
}

// withUserID simulates the auth middleware by injecting the authenticated
// user ID into the gin context.
func withUserID(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, id)
		c.Next()
	}
}

func TestAccountHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, firstName, lastName, email, password string) error
		expectedStatus   int
		expectedMsg      string
	}{
		{
			name: "success: user registration",
			requestBody: gin.H{
				"nome": "Joao", "sobrenome": "Silva",
				"email": "joao@example.com", "senha": "password123",
			},
			mockRegisterFunc: func(ctx context.Context, firstName, lastName, email, password string) error { return nil },
			expectedStatus:   http.StatusCreated,
			expectedMsg:      "user created successfully",
		},
		{
			name: "failure: missing senha",
			requestBody: gin.H{
				"nome": "Joao", "sobrenome": "Silva", "email": "joao@example.com",
			},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusUnprocessableEntity,
			expectedMsg:      "all fields are required",
		},
		{
			name: "failure: missing nome",
			requestBody: gin.H{
				"sobrenome": "Silva", "email": "joao@example.com", "senha": "password123",
			},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusUnprocessableEntity,
			expectedMsg:      "all fields are required",
		},
		{
			name: "failure: invalid email address",
			requestBody: gin.H{
				"nome": "Joao", "sobrenome": "Silva",
				"email": "not-an-email", "senha": "password123",
			},
			mockRegisterFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusUnprocessableEntity,
			expectedMsg:      "invalid email",
		},
		{
			name: "failure: duplicate email",
			requestBody: gin.H{
				"nome": "Joao", "sobrenome": "Silva",
				"email": "existing@example.com", "senha": "password123",
			},
			mockRegisterFunc: func(ctx context.Context, firstName, lastName, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "user already exists, use another email",
		},
		{
			name: "failure: repository error",
			requestBody: gin.H{
				"nome": "Joao", "sobrenome": "Silva",
				"email": "joao@example.com", "senha": "password123",
			},
			mockRegisterFunc: func(ctx context.Context, firstName, lastName, email, password string) error {
				return errors.New("database down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "server error, try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAccountUsecase{RegisterFunc: tt.mockRegisterFunc}
			h := NewAccountHandler(mockUC)

			router := gin.New()
			router.POST("/register", h.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedMsg, responseBody["msg"])
		})
	}
}

func TestAccountHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, name, email, password string) (string, error)
		expectedStatus int
		expectedMsg    string
		expectedToken  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"nome": "Joao", "email": "joao@example.com", "senha": "password123"},
			mockLoginFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "dummy-jwt-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "authentication successful",
			expectedToken:  "dummy-jwt-token",
		},
		{
			name:           "failure: missing senha",
			requestBody:    gin.H{"nome": "Joao", "email": "joao@example.com"},
			mockLoginFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "all fields are required",
		},
		{
			// メール書式はログインでは検証されない。未知の名前なら検索が先に404を返す。
			name:        "failure: unknown name with malformed email reaches lookup",
			requestBody: gin.H{"nome": "Ghost", "email": "not-an-email", "senha": "password123"},
			mockLoginFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
		{
			name:        "failure: user not found",
			requestBody: gin.H{"nome": "Maria", "email": "maria@example.com", "senha": "password123"},
			mockLoginFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
		{
			name:        "failure: email mismatch",
			requestBody: gin.H{"nome": "Joao", "email": "other@example.com", "senha": "password123"},
			mockLoginFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", usecase.ErrEmailMismatch
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "invalid email",
		},
		{
			name:        "failure: wrong password",
			requestBody: gin.H{"nome": "Joao", "email": "joao@example.com", "senha": "wrong"},
			mockLoginFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", usecase.ErrInvalidPassword
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "invalid password",
		},
		{
			name:        "failure: token issuance error",
			requestBody: gin.H{"nome": "Joao", "email": "joao@example.com", "senha": "password123"},
			mockLoginFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", errors.New("signing error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "server error, try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAccountUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAccountHandler(mockUC)

			router := gin.New()
			router.POST("/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedMsg, responseBody["msg"])
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, responseBody["token"])
			} else {
				assert.NotContains(t, responseBody, "token", "no token on failure")
			}
		})
	}
}

func TestAccountHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: returns user without password hash", func(t *testing.T) {
		mockUC := &mockAccountUsecase{
			GetProfileFunc: func(ctx context.Context, id string) (*entity.User, error) {
				assert.Equal(t, "user-1", id)
				return &entity.User{
					ID:           "user-1",
					FirstName:    "Joao",
					LastName:     "Silva",
					Email:        "joao@example.com",
					PasswordHash: "secret-hash",
				}, nil
			},
		}
		h := NewAccountHandler(mockUC)

		router := gin.New()
		router.GET("/user", withUserID("user-1"), h.Profile)

		req, _ := http.NewRequest(http.MethodGet, "/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "user-1", responseBody["id"])
		assert.Equal(t, "Joao", responseBody["nome"])
		assert.Equal(t, "Silva", responseBody["sobrenome"])
		assert.Equal(t, "joao@example.com", responseBody["email"])

		// The password hash must never appear in the response body
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("failure: user not found", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountUsecase{})

		router := gin.New()
		router.GET("/user", withUserID("deleted-user"), h.Profile)

		req, _ := http.NewRequest(http.MethodGet, "/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("failure: repository error", func(t *testing.T) {
		mockUC := &mockAccountUsecase{
			GetProfileFunc: func(ctx context.Context, id string) (*entity.User, error) {
				return nil, errors.New("database down")
			},
		}
		h := NewAccountHandler(mockUC)

		router := gin.New()
		router.GET("/user", withUserID("user-1"), h.Profile)

		req, _ := http.NewRequest(http.MethodGet, "/user", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAccountHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: account deleted", func(t *testing.T) {
		deletedID := ""
		mockUC := &mockAccountUsecase{
			DeleteAccountFunc: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}
		h := NewAccountHandler(mockUC)

		router := gin.New()
		router.DELETE("/delete", withUserID("user-1"), h.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/delete", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", deletedID)

		var responseBody gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "user deleted successfully", responseBody["msg"])
	})

	t.Run("failure: already deleted returns 404", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountUsecase{})

		router := gin.New()
		router.DELETE("/delete", withUserID("gone-user"), h.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/delete", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var responseBody gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "user not found", responseBody["msg"])
	})
}
