package delivery

import (
	"net/http"

	authdomain "gauth-backend/internal/auth/domain"
	authdto "gauth-backend/internal/auth/dto"
	"gauth-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and profile requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup registers a new account from a Google ID token
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, authdomain.InvalidInput("idToken must be a non-empty string"))
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), req.IDToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login opens a session for an existing account
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, authdomain.InvalidInput("idToken must be a non-empty string"))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Profile returns the caller resolved from the access token
// GET /profile
func (h *AuthHandler) Profile(c *gin.Context) {
	value, ok := c.Get(ContextUserKey)
	user, isUser := value.(*authdomain.User)
	if !ok || !isUser {
		writeError(c, authdomain.Unauthorized())
		return
	}

	c.JSON(http.StatusOK, authdto.ProfileResponse{
		Message: "authenticated",
		User: authdto.AuthenticatedUser{
			UserID: user.ID,
			Email:  user.Email,
		},
	})
}
