package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admissions-crm/internal/app/models"
	"github.com/yigit/admissions-crm/internal/app/models/dto"
	"github.com/yigit/admissions-crm/internal/pkg/apperrors"
	"github.com/yigit/admissions-crm/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSessions struct {
	token string
	user  *models.StaffUser
}

func (s stubSessions) ValidateSession(_ context.Context, token string) (*models.StaffUser, error) {
	if token != s.token {
		return nil, fmt.Errorf("%w: session has been replaced", apperrors.ErrTokenInvalid)
	}
	return s.user, nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestJWTAuth(t *testing.T) {
	staff := &models.StaffUser{ID: "1", Name: "Sarah Johnson", Email: "admin@example.com"}
	mw := NewAuthMiddleware(stubSessions{token: "good", user: staff})

	r := gin.New()
	r.GET("/me", mw.JWTAuth(), func(c *gin.Context) {
		user, ok := auth.UserFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(ContextUserID), "name": user.Name})
	})

	tests := []struct {
		name   string
		target string
		header string
		status int
		code   dto.ErrorCode
	}{
		{"bearer header", "/me", "Bearer good", http.StatusOK, ""},
		{"bare token", "/me", "good", http.StatusOK, ""},
		{"query token", "/me?token=good", "", http.StatusOK, ""},
		{"missing", "/me", "", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"malformed", "/me", "Bearer a b", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"stale token", "/me", "Bearer old", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Error.Code)
			} else {
				assert.Contains(t, w.Body.String(), "Sarah Johnson")
			}
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     dto.ErrorCode
		field    string
		severity dto.ErrorSeverity
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "", dto.ErrorSeverityInfo},
		{"validation", apperrors.NewValidationError("gpa", "GPA must be between 0 and 4.5"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "gpa", dto.ErrorSeverityError},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "", dto.ErrorSeverityError},
		{"expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "", dto.ErrorSeverityError},
		{"not authenticated", apperrors.ErrNotAuthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "", dto.ErrorSeverityError},
		{"rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "", dto.ErrorSeverityWarning},
		{"operation failed", apperrors.NewOperationFailedError("write session", errors.New("disk full")), http.StatusInternalServerError, dto.ErrorCodeOperationFailed, "", dto.ErrorSeverityCritical},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "", dto.ErrorSeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.field, resp.Error.Field)
			assert.Equal(t, tt.severity, resp.Error.Severity)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimitMiddleware(1, 2), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code, "limits are per client")
}

func TestValidateRequest(t *testing.T) {
	r := gin.New()
	r.POST("/login", ValidateRequest[dto.LoginRequest](), func(c *gin.Context) {
		body, ok := ValidatedBody[dto.LoginRequest](c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": body.Email})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@example.com","password":"password"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"nope"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)
}

func TestRequestLoggerAndMetrics(t *testing.T) {
	var buf strings.Builder
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)), Metrics())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("http://localhost:5173"))
	r.GET("/students", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/students", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
