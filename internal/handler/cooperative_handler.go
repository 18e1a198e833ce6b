package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// CooperativeHandler handles cooperative requests
type CooperativeHandler struct {
	coops *repository.CooperativeRepository
}

// NewCooperativeHandler creates a new CooperativeHandler
func NewCooperativeHandler(coops *repository.CooperativeRepository) *CooperativeHandler {
	return &CooperativeHandler{coops: coops}
}

// List returns one page of cooperatives, optionally scoped by region ids
// GET /v1/cooperatives?page=&limit=&search=&province_id=&city_id=&subdistrict_id=
func (h *CooperativeHandler) List(c *gin.Context) {
	p := listParams(c)
	scope := models.CooperativeScope{
		ProvinceID:    intQuery(c, "province_id"),
		CityID:        intQuery(c, "city_id"),
		SubdistrictID: intQuery(c, "subdistrict_id"),
	}
	items, total, err := h.coops.List(c.Request.Context(), p, scope)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{
		"total_cooperatives": total,
		"offset":             p.Offset(),
		"limit":              p.Limit,
		"cooperatives":       items,
	})
}

// Get returns a cooperative by id
// GET /v1/cooperatives/:id
func (h *CooperativeHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	coop, err := h.coops.Get(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"cooperative": coop})
}

// Create adds a cooperative anchored to a valid region chain
// POST /v1/cooperatives
func (h *CooperativeHandler) Create(c *gin.Context) {
	var req models.CooperativeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	coop, err := h.coops.Create(c.Request.Context(), req)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"cooperative": coop})
}

// Update applies a partial update to a cooperative
// PUT /v1/cooperatives/:id
func (h *CooperativeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var upd models.CooperativeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	coop, err := h.coops.Update(c.Request.Context(), id, upd)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"cooperative": coop})
}

// Delete removes a cooperative
// DELETE /v1/cooperatives/:id
func (h *CooperativeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.coops.Delete(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Koperasi berhasil dihapus")
}
