package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/service"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// RegionHandler handles province, city and subdistrict requests, including the
// dependent-select (cascade) reads.
type RegionHandler struct {
	regions *repository.RegionRepository
	cascade *service.CascadeService
}

// NewRegionHandler creates a new RegionHandler
func NewRegionHandler(regions *repository.RegionRepository, cascade *service.CascadeService) *RegionHandler {
	return &RegionHandler{regions: regions, cascade: cascade}
}

// --- Provinces ---

// ListProvinces returns one page of provinces
// GET /v1/provinces?page=&limit=&search=
func (h *RegionHandler) ListProvinces(c *gin.Context) {
	p := listParams(c)
	items, total, err := h.regions.ListProvinces(c.Request.Context(), p)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{
		"total_provinces": total,
		"offset":          p.Offset(),
		"limit":           p.Limit,
		"provinces":       items,
	})
}

// GetProvince returns a province by id
// GET /v1/provinces/:id
func (h *RegionHandler) GetProvince(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	p, err := h.regions.GetProvince(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"province": p})
}

type provinceRequest struct {
	Name string `json:"name"`
}

// CreateProvince adds a province
// POST /v1/provinces
func (h *RegionHandler) CreateProvince(c *gin.Context) {
	var req provinceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	p, err := h.regions.CreateProvince(c.Request.Context(), req.Name)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"province": p})
}

// UpdateProvince applies a partial update to a province
// PUT /v1/provinces/:id
func (h *RegionHandler) UpdateProvince(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var upd models.ProvinceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	p, err := h.regions.UpdateProvince(c.Request.Context(), id, upd)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"province": p})
}

// DeleteProvince removes a province per the delete policy
// DELETE /v1/provinces/:id
func (h *RegionHandler) DeleteProvince(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.regions.DeleteProvince(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Provinsi berhasil dihapus")
}

// CitiesOfProvince returns the valid cities for a selected province
// GET /v1/provinces/:id/cities
func (h *RegionHandler) CitiesOfProvince(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	items, err := h.cascade.CitiesOf(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"total_cities": len(items), "cities": items})
}

// --- Cities ---

// ListCities returns one page of cities
// GET /v1/cities?page=&limit=&search=&province_id=
func (h *RegionHandler) ListCities(c *gin.Context) {
	p := listParams(c)
	items, total, err := h.regions.ListCities(c.Request.Context(), p, intQuery(c, "province_id"))
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{
		"total_cities": total,
		"offset":       p.Offset(),
		"limit":        p.Limit,
		"cities":       items,
	})
}

// GetCity returns a city by id
// GET /v1/cities/:id
func (h *RegionHandler) GetCity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	city, err := h.regions.GetCity(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"city": city})
}

type cityRequest struct {
	Name       string `json:"name"`
	ProvinceID int    `json:"province_id"`
}

// CreateCity adds a city under an existing province
// POST /v1/cities
func (h *RegionHandler) CreateCity(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	city, err := h.regions.CreateCity(c.Request.Context(), req.Name, req.ProvinceID)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"city": city})
}

// UpdateCity applies a partial update to a city
// PUT /v1/cities/:id
func (h *RegionHandler) UpdateCity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var upd models.CityUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	city, err := h.regions.UpdateCity(c.Request.Context(), id, upd)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"city": city})
}

// DeleteCity removes a city per the delete policy
// DELETE /v1/cities/:id
func (h *RegionHandler) DeleteCity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.regions.DeleteCity(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Kota berhasil dihapus")
}

// SubdistrictsOfCity returns the valid subdistricts for a selected city
// GET /v1/cities/:id/subdistricts
func (h *RegionHandler) SubdistrictsOfCity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	items, err := h.cascade.SubdistrictsOf(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"total_subdistricts": len(items), "subdistricts": items})
}

// --- Subdistricts ---

// ListSubdistricts returns one page of subdistricts
// GET /v1/subdistricts?page=&limit=&search=&city_id=
func (h *RegionHandler) ListSubdistricts(c *gin.Context) {
	p := listParams(c)
	items, total, err := h.regions.ListSubdistricts(c.Request.Context(), p, intQuery(c, "city_id"))
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{
		"total_subdistricts": total,
		"offset":             p.Offset(),
		"limit":              p.Limit,
		"subdistricts":       items,
	})
}

// GetSubdistrict returns a subdistrict by id
// GET /v1/subdistricts/:id
func (h *RegionHandler) GetSubdistrict(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	s, err := h.regions.GetSubdistrict(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"subdistrict": s})
}

type subdistrictRequest struct {
	Name   string `json:"name"`
	CityID int    `json:"city_id"`
}

// CreateSubdistrict adds a subdistrict under an existing city
// POST /v1/subdistricts
func (h *RegionHandler) CreateSubdistrict(c *gin.Context) {
	var req subdistrictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	s, err := h.regions.CreateSubdistrict(c.Request.Context(), req.Name, req.CityID)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{"subdistrict": s})
}

// UpdateSubdistrict applies a partial update to a subdistrict
// PUT /v1/subdistricts/:id
func (h *RegionHandler) UpdateSubdistrict(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var upd models.SubdistrictUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	s, err := h.regions.UpdateSubdistrict(c.Request.Context(), id, upd)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"subdistrict": s})
}

// DeleteSubdistrict removes a subdistrict per the delete policy
// DELETE /v1/subdistricts/:id
func (h *RegionHandler) DeleteSubdistrict(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.regions.DeleteSubdistrict(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Kecamatan berhasil dihapus")
}

// CooperativesOfSubdistrict returns the valid cooperatives for a selected subdistrict
// GET /v1/subdistricts/:id/cooperatives
func (h *RegionHandler) CooperativesOfSubdistrict(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	items, err := h.cascade.CooperativesOf(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{"total_cooperatives": len(items), "cooperatives": items})
}
