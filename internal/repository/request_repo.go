package repository

import (
	"context"
	"sync"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// RequestRepository stores savings/loan application requests. A request is
// created as Diajukan and resolved exactly once to Disetujui or Ditolak.
type RequestRepository struct {
	opts  Options
	coops *CooperativeRepository

	mu      sync.RWMutex
	records []models.ApplicationRequest
	seq     sequence
}

// NewRequestRepository builds a request store from the seed records.
func NewRequestRepository(opts Options, coops *CooperativeRepository, seed []models.ApplicationRequest) *RequestRepository {
	r := &RequestRepository{
		opts:    opts,
		coops:   coops,
		records: append([]models.ApplicationRequest(nil), seed...),
	}
	for _, rec := range r.records {
		r.seq.bump(rec.ID)
	}
	return r
}

// Total reports the current store size.
func (r *RequestRepository) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// List returns one page of requests. Filters are conjunctive: user,
// cooperative, request type, and an inclusive date range. Search matches the
// type, status and applicant name. Results are sorted by date descending.
func (r *RequestRepository) List(ctx context.Context, p ListParams, f models.RequestFilter) ([]models.ApplicationRequest, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := query[models.ApplicationRequest]{
		search: p.Search,
		fields: func(v models.ApplicationRequest) []string { return []string{v.Type, v.Status, v.UserFullName} },
		less:   func(a, b models.ApplicationRequest) bool { return dateAfter(a.Date, b.Date) },
		params: p,
	}
	if f.UserID != 0 {
		q.filters = append(q.filters, func(v models.ApplicationRequest) bool { return v.UserID == f.UserID })
	}
	if f.CooperativeID != 0 {
		q.filters = append(q.filters, func(v models.ApplicationRequest) bool { return v.CooperativeID == f.CooperativeID })
	}
	if f.Type != "" {
		q.filters = append(q.filters, func(v models.ApplicationRequest) bool { return v.Type == f.Type })
	}
	if f.StartDate != "" {
		start := f.StartDate
		q.filters = append(q.filters, func(v models.ApplicationRequest) bool { return !dateAfter(start, v.Date) })
	}
	if f.EndDate != "" {
		end := f.EndDate
		q.filters = append(q.filters, func(v models.ApplicationRequest) bool { return !dateAfter(v.Date, end) })
	}
	items, total := runQuery(r.records, q)
	return items, total, nil
}

// Get returns a request by id.
func (r *RequestRepository) Get(ctx context.Context, id int) (models.ApplicationRequest, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.ApplicationRequest{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.ApplicationRequest{}, utils.NotFoundf("Pengajuan dengan ID %d tidak ditemukan", id)
}

// Create submits a request. All fields are required, the type must be Simpan
// or Pinjam, and the cooperative reference must exist. Status starts as
// Diajukan regardless of input.
func (r *RequestRepository) Create(ctx context.Context, in models.RequestInput) (models.ApplicationRequest, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.ApplicationRequest{}, err
	}
	if in.UserID == 0 || in.CooperativeID == 0 || in.Amount <= 0 || in.Date == "" || in.Type == "" {
		return models.ApplicationRequest{}, utils.Invalidf("Semua field harus diisi.")
	}
	if in.Type != models.RequestTypeSave && in.Type != models.RequestTypeBorrow {
		return models.ApplicationRequest{}, utils.Invalidf("Jenis pengajuan harus %s atau %s", models.RequestTypeSave, models.RequestTypeBorrow)
	}
	if _, err := parseDate(in.Date); err != nil {
		return models.ApplicationRequest{}, utils.Invalidf("Tanggal tidak valid: %s", in.Date)
	}
	if !r.coops.Exists(in.CooperativeID) {
		return models.ApplicationRequest{}, utils.Referencef("Koperasi dengan ID %d tidak ditemukan", in.CooperativeID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := models.ApplicationRequest{
		ID:            r.seq.next(),
		UserID:        in.UserID,
		UserFullName:  in.UserFullName,
		CooperativeID: in.CooperativeID,
		Amount:        in.Amount,
		Date:          in.Date,
		Type:          in.Type,
		Status:        models.RequestStatusSubmitted,
	}
	r.records = append(r.records, rec)
	return rec, nil
}

// UpdateStatus resolves a request. Only Diajukan requests can transition, and
// only to Disetujui or Ditolak; re-resolving is refused.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int, status string) (models.ApplicationRequest, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.ApplicationRequest{}, err
	}
	if status != models.RequestStatusApproved && status != models.RequestStatusRejected {
		return models.ApplicationRequest{}, utils.Invalidf("Status harus %s atau %s", models.RequestStatusApproved, models.RequestStatusRejected)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		if r.records[i].Status != models.RequestStatusSubmitted {
			return models.ApplicationRequest{}, utils.Conflictf("Pengajuan dengan ID %d sudah %s", id, r.records[i].Status)
		}
		r.records[i].Status = status
		return r.records[i], nil
	}
	return models.ApplicationRequest{}, utils.NotFoundf("Pengajuan dengan ID %d tidak ditemukan", id)
}

// Delete removes a request by id.
func (r *RequestRepository) Delete(ctx context.Context, id int) error {
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
	return utils.NotFoundf("Pengajuan dengan ID %d tidak ditemukan", id)
}

// CountByStatus reports how many requests are in each status.
func (r *RequestRepository) CountByStatus() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := map[string]int{}
	for _, rec := range r.records {
		out[rec.Status]++
	}
	return out
}
