package models

// Report is a single savings or loan ledger entry. The two ledgers share every
// field except the closed enumeration: savings carry a type ("Simpanan Pokok",
// "Simpanan Wajib"), loans carry a status ("Disetujui", "Ditolak", "Menunggu").
// Category holds whichever applies; the wire views below restore the original
// field names.
type Report struct {
	ID            int
	CooperativeID int
	UserID        int
	FullName      string
	Amount        float64
	Date          string // calendar date, YYYY-MM-DD
	Category      string
}

// SavingReport is the wire view of a savings ledger entry.
type SavingReport struct {
	ID            int     `json:"id"`
	CooperativeID int     `json:"cooperative_id"`
	UserID        int     `json:"user_id"`
	FullName      string  `json:"full_name"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
}

// LoanReport is the wire view of a loan ledger entry.
type LoanReport struct {
	ID            int     `json:"id"`
	CooperativeID int     `json:"cooperative_id"`
	UserID        int     `json:"user_id"`
	FullName      string  `json:"full_name"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
}

// AsSaving converts a ledger entry to its savings wire view.
func (r Report) AsSaving() SavingReport {
	return SavingReport{
		ID:            r.ID,
		CooperativeID: r.CooperativeID,
		UserID:        r.UserID,
		FullName:      r.FullName,
		Amount:        r.Amount,
		Date:          r.Date,
		Type:          r.Category,
	}
}

// AsLoan converts a ledger entry to its loan wire view.
func (r Report) AsLoan() LoanReport {
	return LoanReport{
		ID:            r.ID,
		CooperativeID: r.CooperativeID,
		UserID:        r.UserID,
		FullName:      r.FullName,
		Amount:        r.Amount,
		Date:          r.Date,
		Status:        r.Category,
	}
}

// ReportInput carries the fields required to create a ledger entry.
type ReportInput struct {
	CooperativeID int
	UserID        int
	FullName      string
	Amount        float64
	Date          string
	Category      string
}

// ReportUpdate is a partial-field update. Nil fields are left unchanged.
type ReportUpdate struct {
	CooperativeID *int
	UserID        *int
	FullName      *string
	Amount        *float64
	Date          *string
	Category      *string
}

// ReportFilter narrows a ledger listing. Zero values mean "no constraint";
// both date bounds are inclusive.
type ReportFilter struct {
	CooperativeID int
	StartDate     string
	EndDate       string
}
