package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
)

func testReportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	regions := repository.NewRegionRepository(repository.Options{},
		[]models.Province{{ID: 35, Name: "Jawa Timur"}},
		[]models.City{{ID: 3571, Name: "Kota Kediri", ProvinceID: 35}},
		[]models.Subdistrict{{ID: 357101, Name: "Mojoroto", CityID: 3571}},
	)
	coops := repository.NewCooperativeRepository(repository.Options{}, regions, []models.Cooperative{
		{ID: 1, Name: "Koperasi Maju Bersama", ProvinceID: 35, CityID: 3571, SubdistrictID: 357101},
	})
	savings := repository.NewReportRepository(repository.Options{}, repository.SavingReports, coops, []models.Report{
		{ID: 1, CooperativeID: 1, UserID: 1, FullName: "Budi Santoso", Amount: 500000, Date: "2024-01-15", Category: "Simpanan Pokok"},
	})
	loans := repository.NewReportRepository(repository.Options{}, repository.LoanReports, coops, []models.Report{
		{ID: 1, CooperativeID: 1, UserID: 2, FullName: "Siti Aminah", Amount: 2000000, Date: "2024-02-01", Category: "Disetujui"},
	})

	r := gin.New()
	sh := NewReportHandler(savings, repository.SavingReports)
	lh := NewReportHandler(loans, repository.LoanReports)
	r.GET("/v1/reports/savings", sh.List)
	r.POST("/v1/reports/savings", sh.Create)
	r.GET("/v1/reports/loans", lh.List)
	return r
}

func TestSavingListUsesTypeField(t *testing.T) {
	r := testReportRouter()

	code, payload := doJSON(t, r, http.MethodGet, "/v1/reports/savings", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), payload["total_saving_reports"])

	items := payload["saving_reports"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Simpanan Pokok", first["type"])
	assert.NotContains(t, first, "status")
}

func TestLoanListUsesStatusField(t *testing.T) {
	r := testReportRouter()

	code, payload := doJSON(t, r, http.MethodGet, "/v1/reports/loans", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), payload["total_loan_reports"])

	items := payload["loan_reports"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Disetujui", first["status"])
	assert.NotContains(t, first, "type")
}

func TestCreateSavingReportUnknownCooperative(t *testing.T) {
	r := testReportRouter()

	code, payload := doJSON(t, r, http.MethodPost, "/v1/reports/savings",
		`{"cooperative_id":99,"user_id":1,"full_name":"Budi Santoso","amount":100000,"date":"2024-03-01","type":"Simpanan Wajib"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Koperasi dengan ID 99 tidak ditemukan", payload["message"])
}

func TestCreateSavingReport(t *testing.T) {
	r := testReportRouter()

	code, payload := doJSON(t, r, http.MethodPost, "/v1/reports/savings",
		`{"cooperative_id":1,"user_id":1,"full_name":"Budi Santoso","amount":100000,"date":"2024-03-01","type":"Simpanan Wajib"}`)
	assert.Equal(t, http.StatusCreated, code)
	rec := payload["saving_report"].(map[string]interface{})
	assert.Equal(t, float64(2), rec["id"])
	assert.Equal(t, "Simpanan Wajib", rec["type"])
}
