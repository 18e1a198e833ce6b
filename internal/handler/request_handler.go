package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// RequestHandler handles savings/loan application requests
type RequestHandler struct {
	requests *repository.RequestRepository
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requests *repository.RequestRepository) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// List returns one page of application requests
// GET /v1/requests?page=&limit=&search=&user_id=&cooperative_id=&type=&start_date=&end_date=
func (h *RequestHandler) List(c *gin.Context) {
	p := listParams(c)
	filter := models.RequestFilter{
		UserID:        intQuery(c, "user_id"),
		CooperativeID: intQuery(c, "cooperative_id"),
		Type:          c.Query("type"),
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
	}
	items, total, err := h.requests.List(c.Request.Context(), p, filter)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{
		"total_requests": total,
		"offset":         p.Offset(),
		"limit":          p.Limit,
		"requests":       items,
	})
}

// Get returns an application request by id
// GET /v1/requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	req, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"request": req})
}

// Create submits an application request; its status starts as Diajukan
// POST /v1/requests
func (h *RequestHandler) Create(c *gin.Context) {
	var in models.RequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	req, err := h.requests.Create(c.Request.Context(), in)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"request": req})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus resolves a request to Disetujui or Ditolak
// PATCH /v1/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var body statusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	req, err := h.requests.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"request": req})
}

// Delete removes an application request
// DELETE /v1/requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.requests.Delete(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Pengajuan berhasil dihapus")
}
