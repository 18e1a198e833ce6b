package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/service"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// UserHandler handles account management requests
type UserHandler struct {
	users *repository.UserRepository
	auth  *service.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *repository.UserRepository, auth *service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

// List returns one page of accounts
// GET /v1/users?page=&limit=&search=&role=
func (h *UserHandler) List(c *gin.Context) {
	p := listParams(c)
	items, total, err := h.users.List(c.Request.Context(), p, c.Query("role"))
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{
		"total_users": total,
		"offset":      p.Offset(),
		"limit":       p.Limit,
		"users":       items,
	})
}

// Get returns an account by id
// GET /v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"user": user})
}

// Create adds an account; unlike register, the caller chooses the role
// POST /v1/users
func (h *UserHandler) Create(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	user, err := h.auth.CreateUser(c.Request.Context(), in)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"user": user})
}

// Update applies a partial update to an account
// PUT /v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, upd)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"user": user})
}

// Delete removes an account
// DELETE /v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Pengguna berhasil dihapus")
}
