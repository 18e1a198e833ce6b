package seed

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/koperasindo/koperasi-api/internal/models"
)

// In-code seed records for the mutable stores, mirroring the datasets the
// console ships with for development.

// Cooperatives returns the seed cooperative records. Each triple nests
// correctly in the embedded region data.
func Cooperatives() []models.Cooperative {
	return []models.Cooperative{
		{ID: 1, Name: "Koperasi Maju Bersama", ProvinceID: 35, CityID: 3571, SubdistrictID: 357101},
		{ID: 2, Name: "Koperasi Sejahtera", ProvinceID: 31, CityID: 3171, SubdistrictID: 317101},
		{ID: 3, Name: "Koperasi Makmur", ProvinceID: 32, CityID: 3271, SubdistrictID: 327101},
		{ID: 4, Name: "Koperasi Bina Usaha", ProvinceID: 33, CityID: 3371, SubdistrictID: 337101},
		{ID: 5, Name: "Koperasi Mandiri", ProvinceID: 34, CityID: 3471, SubdistrictID: 347101},
	}
}

// Users returns the seed accounts. Every account starts with the same
// development password.
func Users() ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	users := []models.User{
		{ID: 1, Name: "Admin User", Email: "admin@example.com", PhoneNumber: "081234567890", Role: models.RoleAdmin},
		{ID: 2, Name: "John Doe", Email: "john@example.com", PhoneNumber: "081234567891", Role: models.RoleUser},
		{ID: 3, Name: "Jane Smith", Email: "jane@example.com", PhoneNumber: "081234567892", Role: models.RoleUser},
		{ID: 4, Name: "Super Admin", Email: "superadmin@example.com", PhoneNumber: "081234567893", Role: models.RoleAdmin},
		{ID: 5, Name: "Regular User", Email: "user@example.com", PhoneNumber: "081234567894", Role: models.RoleUser},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
	}
	return users, nil
}

// SavingReports returns the seed savings ledger.
func SavingReports() []models.Report {
	return []models.Report{
		{ID: 1, CooperativeID: 1, UserID: 101, FullName: "Budi Santoso", Amount: 1000000, Date: "2025-01-01", Category: "Simpanan Pokok"},
		{ID: 2, CooperativeID: 1, UserID: 102, FullName: "Siti Aminah", Amount: 500000, Date: "2025-01-05", Category: "Simpanan Wajib"},
		{ID: 3, CooperativeID: 2, UserID: 103, FullName: "Ahmad Fauzi", Amount: 750000, Date: "2025-01-10", Category: "Simpanan Pokok"},
		{ID: 4, CooperativeID: 3, UserID: 104, FullName: "Dewi Lestari", Amount: 200000, Date: "2025-01-15", Category: "Simpanan Wajib"},
	}
}

// LoanReports returns the seed loan ledger.
func LoanReports() []models.Report {
	return []models.Report{
		{ID: 1, CooperativeID: 1, UserID: 101, FullName: "Budi Santoso", Amount: 2000000, Date: "2025-01-02", Category: "Disetujui"},
		{ID: 2, CooperativeID: 2, UserID: 102, FullName: "Siti Aminah", Amount: 1500000, Date: "2025-01-06", Category: "Menunggu"},
		{ID: 3, CooperativeID: 3, UserID: 103, FullName: "Ahmad Fauzi", Amount: 1000000, Date: "2025-01-12", Category: "Ditolak"},
		{ID: 4, CooperativeID: 1, UserID: 104, FullName: "Dewi Lestari", Amount: 500000, Date: "2025-01-18", Category: "Disetujui"},
	}
}

// Requests returns the seed application requests.
func Requests() []models.ApplicationRequest {
	return []models.ApplicationRequest{
		{ID: 1, UserID: 101, CooperativeID: 1, Amount: 1000000, Date: "2025-01-01", Type: models.RequestTypeSave, Status: models.RequestStatusSubmitted},
		{ID: 2, UserID: 102, CooperativeID: 2, Amount: 2000000, Date: "2025-01-05", Type: models.RequestTypeBorrow, Status: models.RequestStatusApproved},
	}
}
