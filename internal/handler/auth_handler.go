package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/service"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Fail(c, http.StatusBadRequest, "Email dan password harus diisi.")
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// Register creates a new account with the default user role
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	req.Role = models.RoleUser

	user, err := h.auth.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"user": user})
}
