package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "gauth-backend/internal/auth/domain"
	authdto "gauth-backend/internal/auth/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthUsecase struct {
	registerErr error
	users       map[string]*authdomain.User
	validateErr error
	lastToken   string
}

func (s *stubAuthUsecase) Register(_ context.Context, _ string) (*authdto.AuthResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &authdto.AuthResponse{AccessToken: "a", RefreshToken: "r"}, nil
}

func (s *stubAuthUsecase) Login(_ context.Context, _ string) (*authdto.AuthResponse, error) {
	return nil, authdomain.NotRegistered()
}

func (s *stubAuthUsecase) ValidateToken(_ context.Context, accessToken string) (*authdomain.User, error) {
	s.lastToken = accessToken
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	user, ok := s.users[accessToken]
	if !ok {
		return nil, authdomain.Unauthorized()
	}
	return user, nil
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) authdto.ErrorResponse {
	t.Helper()
	var body authdto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func runWriteError(err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	writeError(c, err)
	return rec
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp 10.0.0.5:5432: connect: connection refused")

	rec := runWriteError(cause)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestWriteError_WrappedCauseStaysPrivate(t *testing.T) {
	rec := runWriteError(authdomain.CreateFailed(errors.New("UNIQUE constraint failed: users.email")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "failed to create user", body.Message)
	assert.NotContains(t, rec.Body.String(), "UNIQUE constraint")
}

func TestWriteError_DomainKinds(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{authdomain.VerificationFailed(), http.StatusBadRequest, "Google token verification failed"},
		{authdomain.AlreadyExists(), http.StatusConflict, "email already registered"},
		{authdomain.NotRegistered(), http.StatusNotFound, "email is not registered"},
		{authdomain.Unauthorized(), http.StatusUnauthorized, "invalid or expired token"},
		{authdomain.IssuanceFailed(errors.New("disk full")), http.StatusInternalServerError, "failed to issue session tokens"},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			rec := runWriteError(tc.err)
			assert.Equal(t, tc.status, rec.Code)
			body := decodeErrorBody(t, rec)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, http.StatusText(tc.status), body.Error)
			assert.Equal(t, tc.status, body.StatusCode)
		})
	}
}

func newProfileRouter(uc *stubAuthUsecase) *gin.Engine {
	r := gin.New()
	h := NewAuthHandler(uc)
	r.GET("/profile", AuthMiddleware(uc), h.Profile)
	r.POST("/auth/signup", h.Signup)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	uc := &stubAuthUsecase{users: map[string]*authdomain.User{
		"good": {ID: "u1", Email: "a@x.com"},
	}}
	router := newProfileRouter(uc)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"extra parts", "Bearer good extra", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestProfile_ReturnsAuthenticatedUser(t *testing.T) {
	uc := &stubAuthUsecase{users: map[string]*authdomain.User{
		"good": {ID: "u1", Email: "a@x.com"},
	}}
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	newProfileRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good", uc.lastToken)
	var body authdto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.User.UserID)
	assert.Equal(t, "a@x.com", body.User.Email)
}

func TestAuthMiddleware_StoreFailureIsOpaque(t *testing.T) {
	uc := &stubAuthUsecase{validateErr: errors.New("sql: database is closed")}
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	newProfileRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is closed")
}

func TestSignup_RejectsMissingIDToken(t *testing.T) {
	for _, payload := range []string{`{}`, `{"idToken":""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newProfileRouter(&stubAuthUsecase{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "idToken must be a non-empty string", body.Message)
	}
}
