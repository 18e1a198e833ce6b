package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// CooperativeRepository stores cooperative records. Each record references a
// (province, city, subdistrict) triple, and every create/update verifies that
// the triple is a real chain in the region store.
type CooperativeRepository struct {
	opts    Options
	regions *RegionRepository

	mu      sync.RWMutex
	records []models.Cooperative
	seq     sequence
}

// NewCooperativeRepository builds a cooperative store from the seed records
// and registers it with the region store's delete policy.
func NewCooperativeRepository(opts Options, regions *RegionRepository, seed []models.Cooperative) *CooperativeRepository {
	r := &CooperativeRepository{
		opts:    opts,
		regions: regions,
		records: append([]models.Cooperative(nil), seed...),
	}
	for _, c := range r.records {
		r.seq.bump(c.ID)
	}
	regions.AttachCooperatives(r)
	return r
}

// Total reports the current store size.
func (r *CooperativeRepository) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// List returns one page of cooperatives. Scope filters are conjunctive: every
// supplied region id must match. Search matches the cooperative name only.
// Results are sorted by id descending.
func (r *CooperativeRepository) List(ctx context.Context, p ListParams, scope models.CooperativeScope) ([]models.Cooperative, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := query[models.Cooperative]{
		search: p.Search,
		fields: func(v models.Cooperative) []string { return []string{v.Name} },
		less:   func(a, b models.Cooperative) bool { return a.ID > b.ID },
		params: p,
	}
	if scope.ProvinceID != 0 {
		q.filters = append(q.filters, func(v models.Cooperative) bool { return v.ProvinceID == scope.ProvinceID })
	}
	if scope.CityID != 0 {
		q.filters = append(q.filters, func(v models.Cooperative) bool { return v.CityID == scope.CityID })
	}
	if scope.SubdistrictID != 0 {
		q.filters = append(q.filters, func(v models.Cooperative) bool { return v.SubdistrictID == scope.SubdistrictID })
	}
	items, total := runQuery(r.records, q)
	return items, total, nil
}

// Get returns a cooperative by id.
func (r *CooperativeRepository) Get(ctx context.Context, id int) (models.Cooperative, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Cooperative{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.records {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Cooperative{}, utils.NotFoundf("Koperasi dengan ID %d tidak ditemukan", id)
}

// Create adds a cooperative. All four fields are required and the region ids
// must form a valid chain.
func (r *CooperativeRepository) Create(ctx context.Context, in models.CooperativeInput) (models.Cooperative, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Cooperative{}, err
	}
	if strings.TrimSpace(in.Name) == "" || in.ProvinceID == 0 || in.CityID == 0 || in.SubdistrictID == 0 {
		return models.Cooperative{}, utils.Invalidf("Semua field harus diisi.")
	}
	if err := r.regions.ValidateChain(in.ProvinceID, in.CityID, in.SubdistrictID); err != nil {
		return models.Cooperative{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := models.Cooperative{
		ID:            r.seq.next(),
		Name:          in.Name,
		ProvinceID:    in.ProvinceID,
		CityID:        in.CityID,
		SubdistrictID: in.SubdistrictID,
	}
	r.records = append(r.records, c)
	return c, nil
}

// Update applies a partial update. The region chain resulting from the merge
// of stored and updated fields is validated before anything is stored.
//
// The chain check runs before the cooperative lock is taken, like Create: the
// region store calls back into this store while holding its own lock, so the
// region lock must always come first. The merged record is committed only if
// the stored record is still the one the merge was computed from; otherwise
// the merge is recomputed.
func (r *CooperativeRepository) Update(ctx context.Context, id int, upd models.CooperativeUpdate) (models.Cooperative, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Cooperative{}, err
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return models.Cooperative{}, utils.Invalidf("Nama koperasi tidak boleh kosong")
	}

	for {
		current, err := r.Get(ctx, id)
		if err != nil {
			return models.Cooperative{}, err
		}

		merged := current
		if upd.Name != nil {
			merged.Name = *upd.Name
		}
		if upd.ProvinceID != nil {
			merged.ProvinceID = *upd.ProvinceID
		}
		if upd.CityID != nil {
			merged.CityID = *upd.CityID
		}
		if upd.SubdistrictID != nil {
			merged.SubdistrictID = *upd.SubdistrictID
		}
		if upd.ProvinceID != nil || upd.CityID != nil || upd.SubdistrictID != nil {
			if err := r.regions.ValidateChain(merged.ProvinceID, merged.CityID, merged.SubdistrictID); err != nil {
				return models.Cooperative{}, err
			}
		}

		if r.commitIfUnchanged(id, current, merged) {
			return merged, nil
		}
	}
}

// commitIfUnchanged stores merged if the record still matches the snapshot the
// merge was computed from.
func (r *CooperativeRepository) commitIfUnchanged(id int, current, merged models.Cooperative) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id && r.records[i] == current {
			r.records[i] = merged
			return true
		}
	}
	return false
}

// Delete removes a cooperative by id.
func (r *CooperativeRepository) Delete(ctx context.Context, id int) error {
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
	return utils.NotFoundf("Koperasi dengan ID %d tidak ditemukan", id)
}

// BySubdistrict returns every cooperative anchored to a subdistrict, id
// ascending. This is the cascade-resolver read for the last level.
func (r *CooperativeRepository) BySubdistrict(ctx context.Context, subdistrictID int) ([]models.Cooperative, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, _ := runQuery(r.records, query[models.Cooperative]{
		filters: []func(models.Cooperative) bool{func(v models.Cooperative) bool { return v.SubdistrictID == subdistrictID }},
		less:    func(a, b models.Cooperative) bool { return a.ID < b.ID },
		params:  ListParams{Limit: len(r.records) + 1},
	})
	return items, nil
}

// Exists reports whether a cooperative id is present. Used by the transaction
// stores to validate their cooperative references.
func (r *CooperativeRepository) Exists(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.records {
		if c.ID == id {
			return true
		}
	}
	return false
}

// countBySubdistricts implements cooperativeIndex for the region store.
func (r *CooperativeRepository) countBySubdistricts(ids []int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, c := range r.records {
		if containsID(ids, c.SubdistrictID) {
			n++
		}
	}
	return n
}

// removeBySubdistricts implements cooperativeIndex for the region store.
func (r *CooperativeRepository) removeBySubdistricts(ids []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, c := range r.records {
		if !containsID(ids, c.SubdistrictID) {
			kept = append(kept, c)
		}
	}
	r.records = kept
}
