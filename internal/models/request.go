package models

// Application request types and statuses. A request is resolved exactly once:
// Diajukan → Disetujui or Diajukan → Ditolak.
const (
	RequestTypeSave   = "Simpan"
	RequestTypeBorrow = "Pinjam"

	RequestStatusSubmitted = "Diajukan"
	RequestStatusApproved  = "Disetujui"
	RequestStatusRejected  = "Ditolak"
)

// ApplicationRequest is a member's savings or loan application against a
// cooperative.
type ApplicationRequest struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	UserFullName  string  `json:"user_fullname,omitempty"`
	CooperativeID int     `json:"cooperative_id"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
}

// RequestInput carries the fields required to submit a request. Status is
// always Diajukan on creation.
type RequestInput struct {
	UserID        int     `json:"user_id"`
	UserFullName  string  `json:"user_fullname"`
	CooperativeID int     `json:"cooperative_id"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
}

// RequestFilter narrows a request listing. Zero values mean "no constraint".
type RequestFilter struct {
	UserID        int
	CooperativeID int
	Type          string
	StartDate     string
	EndDate       string
}
