package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// ReportKind selects which ledger a ReportRepository holds. Savings and loan
// reports share every semantic, so one store implementation serves both.
type ReportKind string

const (
	SavingReports ReportKind = "savings"
	LoanReports   ReportKind = "loans"
)

// label returns the Indonesian noun used in messages.
func (k ReportKind) label() string {
	if k == LoanReports {
		return "Laporan pinjaman"
	}
	return "Laporan simpanan"
}

// MonthlyTotal is the aggregate amount of one calendar month, used by the
// dashboard bar chart.
type MonthlyTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

// ReportRepository is an append-only-ish ledger of financial events linked to
// a cooperative and a user. Unlike the region and cooperative stores it sorts
// by date descending, not id descending.
type ReportRepository struct {
	opts  Options
	kind  ReportKind
	coops *CooperativeRepository

	mu      sync.RWMutex
	records []models.Report
	seq     sequence
}

// NewReportRepository builds a ledger store from the seed records.
func NewReportRepository(opts Options, kind ReportKind, coops *CooperativeRepository, seed []models.Report) *ReportRepository {
	r := &ReportRepository{
		opts:    opts,
		kind:    kind,
		coops:   coops,
		records: append([]models.Report(nil), seed...),
	}
	for _, rec := range r.records {
		r.seq.bump(rec.ID)
	}
	return r
}

// Total reports the current store size.
func (r *ReportRepository) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// List returns one page of ledger entries. Filters are conjunctive: an
// optional cooperative scope and an inclusive date range. Search matches the
// type/status and the member's full name. Results are sorted by date
// descending, ties keeping insertion order.
func (r *ReportRepository) List(ctx context.Context, p ListParams, f models.ReportFilter) ([]models.Report, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}

	var start, end string
	if f.StartDate != "" {
		if _, err := parseDate(f.StartDate); err != nil {
			return nil, 0, utils.Invalidf("Tanggal awal tidak valid: %s", f.StartDate)
		}
		start = f.StartDate
	}
	if f.EndDate != "" {
		if _, err := parseDate(f.EndDate); err != nil {
			return nil, 0, utils.Invalidf("Tanggal akhir tidak valid: %s", f.EndDate)
		}
		end = f.EndDate
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	q := query[models.Report]{
		search: p.Search,
		fields: func(v models.Report) []string { return []string{v.Category, v.FullName} },
		less:   func(a, b models.Report) bool { return dateAfter(a.Date, b.Date) },
		params: p,
	}
	if f.CooperativeID != 0 {
		q.filters = append(q.filters, func(v models.Report) bool { return v.CooperativeID == f.CooperativeID })
	}
	if start != "" {
		q.filters = append(q.filters, func(v models.Report) bool { return !dateAfter(start, v.Date) })
	}
	if end != "" {
		q.filters = append(q.filters, func(v models.Report) bool { return !dateAfter(v.Date, end) })
	}
	items, total := runQuery(r.records, q)
	return items, total, nil
}

// Get returns a ledger entry by id.
func (r *ReportRepository) Get(ctx context.Context, id int) (models.Report, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Report{}, utils.NotFoundf("%s dengan ID %d tidak ditemukan", r.kind.label(), id)
}

// Create appends a ledger entry. Cooperative, amount, date and type/status
// are required; the cooperative reference must exist.
func (r *ReportRepository) Create(ctx context.Context, in models.ReportInput) (models.Report, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Report{}, err
	}
	if in.CooperativeID == 0 || in.Amount <= 0 || in.Date == "" || strings.TrimSpace(in.Category) == "" {
		return models.Report{}, utils.Invalidf("Semua field harus diisi.")
	}
	if _, err := parseDate(in.Date); err != nil {
		return models.Report{}, utils.Invalidf("Tanggal tidak valid: %s", in.Date)
	}
	if !r.coops.Exists(in.CooperativeID) {
		return models.Report{}, utils.Referencef("Koperasi dengan ID %d tidak ditemukan", in.CooperativeID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := models.Report{
		ID:            r.seq.next(),
		CooperativeID: in.CooperativeID,
		UserID:        in.UserID,
		FullName:      in.FullName,
		Amount:        in.Amount,
		Date:          in.Date,
		Category:      in.Category,
	}
	r.records = append(r.records, rec)
	return rec, nil
}

// Update applies a partial update to a ledger entry.
func (r *ReportRepository) Update(ctx context.Context, id int, upd models.ReportUpdate) (models.Report, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Report{}, err
	}
	if upd.Amount != nil && *upd.Amount <= 0 {
		return models.Report{}, utils.Invalidf("Jumlah harus lebih dari 0")
	}
	if upd.Date != nil {
		if _, err := parseDate(*upd.Date); err != nil {
			return models.Report{}, utils.Invalidf("Tanggal tidak valid: %s", *upd.Date)
		}
	}
	if upd.CooperativeID != nil && !r.coops.Exists(*upd.CooperativeID) {
		return models.Report{}, utils.Referencef("Koperasi dengan ID %d tidak ditemukan", *upd.CooperativeID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		if upd.CooperativeID != nil {
			r.records[i].CooperativeID = *upd.CooperativeID
		}
		if upd.UserID != nil {
			r.records[i].UserID = *upd.UserID
		}
		if upd.FullName != nil {
			r.records[i].FullName = *upd.FullName
		}
		if upd.Amount != nil {
			r.records[i].Amount = *upd.Amount
		}
		if upd.Date != nil {
			r.records[i].Date = *upd.Date
		}
		if upd.Category != nil {
			r.records[i].Category = *upd.Category
		}
		return r.records[i], nil
	}
	return models.Report{}, utils.NotFoundf("%s dengan ID %d tidak ditemukan", r.kind.label(), id)
}

// Delete removes a ledger entry by id.
func (r *ReportRepository) Delete(ctx context.Context, id int) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundf("%s dengan ID %d tidak ditemukan", r.kind.label(), id)
}

// MonthlyTotals aggregates amounts per calendar month, ascending by month.
func (r *ReportRepository) MonthlyTotals() []MonthlyTotal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byMonth := map[string]float64{}
	for _, rec := range r.records {
		if len(rec.Date) >= 7 {
			byMonth[rec.Date[:7]] += rec.Amount
		}
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]MonthlyTotal, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyTotal{Month: m, Total: byMonth[m]})
	}
	return out
}
