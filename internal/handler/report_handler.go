package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// ReportHandler serves one ledger — savings or loans. Both ledgers share the
// store and handler logic; the kind only changes the wire field (savings carry
// a type, loans a status) and the envelope keys.
type ReportHandler struct {
	reports *repository.ReportRepository
	kind    repository.ReportKind
}

// NewReportHandler creates a new ReportHandler for one ledger kind.
func NewReportHandler(reports *repository.ReportRepository, kind repository.ReportKind) *ReportHandler {
	return &ReportHandler{reports: reports, kind: kind}
}

// reportRequest accepts both wire shapes; exactly one of Type/Status is read,
// matching the handler's kind.
type reportRequest struct {
	CooperativeID int     `json:"cooperative_id"`
	UserID        int     `json:"user_id"`
	FullName      string  `json:"full_name"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
}

func (h *ReportHandler) category(req reportRequest) string {
	if h.kind == repository.LoanReports {
		return req.Status
	}
	return req.Type
}

type reportUpdateRequest struct {
	CooperativeID *int     `json:"cooperative_id"`
	UserID        *int     `json:"user_id"`
	FullName      *string  `json:"full_name"`
	Amount        *float64 `json:"amount"`
	Date          *string  `json:"date"`
	Type          *string  `json:"type"`
	Status        *string  `json:"status"`
}

func (h *ReportHandler) categoryUpdate(req reportUpdateRequest) *string {
	if h.kind == repository.LoanReports {
		return req.Status
	}
	return req.Type
}

// render converts a ledger entry to its wire view for this kind.
func (h *ReportHandler) render(r models.Report) interface{} {
	if h.kind == repository.LoanReports {
		return r.AsLoan()
	}
	return r.AsSaving()
}

func (h *ReportHandler) totalKey() string {
	if h.kind == repository.LoanReports {
		return "total_loan_reports"
	}
	return "total_saving_reports"
}

func (h *ReportHandler) listKey() string {
	if h.kind == repository.LoanReports {
		return "loan_reports"
	}
	return "saving_reports"
}

func (h *ReportHandler) recordKey() string {
	if h.kind == repository.LoanReports {
		return "loan_report"
	}
	return "saving_report"
}

// List returns one page of ledger entries
// GET /v1/reports/{savings|loans}?page=&limit=&search=&cooperative_id=&start_date=&end_date=
func (h *ReportHandler) List(c *gin.Context) {
	p := listParams(c)
	filter := models.ReportFilter{
		CooperativeID: intQuery(c, "cooperative_id"),
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
	}
	items, total, err := h.reports.List(c.Request.Context(), p, filter)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	views := make([]interface{}, 0, len(items))
	for _, r := range items {
		views = append(views, h.render(r))
	}
	utils.OK(c, http.StatusOK, gin.H{
		h.totalKey(): total,
		"offset":     p.Offset(),
		"limit":      p.Limit,
		h.listKey():  views,
	})
}

// Get returns a ledger entry by id
// GET /v1/reports/{savings|loans}/:id
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	r, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{h.recordKey(): h.render(r)})
}

// Create appends a ledger entry
// POST /v1/reports/{savings|loans}
func (h *ReportHandler) Create(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	r, err := h.reports.Create(c.Request.Context(), models.ReportInput{
		CooperativeID: req.CooperativeID,
		UserID:        req.UserID,
		FullName:      req.FullName,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      h.category(req),
	})
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, gin.H{h.recordKey(): h.render(r)})
}

// Update applies a partial update to a ledger entry
// PUT /v1/reports/{savings|loans}/:id
func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	var req reportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Format request tidak valid")
		return
	}
	r, err := h.reports.Update(c.Request.Context(), id, models.ReportUpdate{
		CooperativeID: req.CooperativeID,
		UserID:        req.UserID,
		FullName:      req.FullName,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      h.categoryUpdate(req),
	})
	if err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.OK(c, http.StatusOK, gin.H{h.recordKey(): h.render(r)})
}

// Delete removes a ledger entry
// DELETE /v1/reports/{savings|loans}/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.Fail(c, http.StatusBadRequest, "ID tidak valid")
		return
	}
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		utils.FailErr(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "Laporan berhasil dihapus")
}
