package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// cooperativeIndex lets the region store enforce its delete policy one level
// below the subdistricts without a package cycle: before (or while) removing
// subdistricts it asks the cooperative store about anchored records.
type cooperativeIndex interface {
	countBySubdistricts(ids []int) int
	removeBySubdistricts(ids []int)
}

// RegionRepository is the authoritative store for provinces, cities and
// subdistricts. It owns its record slices exclusively; every read hands out
// value copies so callers can never mutate stored state through a result.
type RegionRepository struct {
	opts Options

	mu           sync.RWMutex
	provinces    []models.Province
	cities       []models.City
	subdistricts []models.Subdistrict

	provSeq sequence
	citySeq sequence
	subSeq  sequence

	coops cooperativeIndex
}

// NewRegionRepository builds a region store from the seed records. The id
// sequences start above the highest seeded id.
func NewRegionRepository(opts Options, provinces []models.Province, cities []models.City, subdistricts []models.Subdistrict) *RegionRepository {
	r := &RegionRepository{
		opts:         opts,
		provinces:    append([]models.Province(nil), provinces...),
		cities:       append([]models.City(nil), cities...),
		subdistricts: append([]models.Subdistrict(nil), subdistricts...),
	}
	for _, p := range r.provinces {
		r.provSeq.bump(p.ID)
	}
	for _, c := range r.cities {
		r.citySeq.bump(c.ID)
	}
	for _, s := range r.subdistricts {
		r.subSeq.bump(s.ID)
	}
	return r
}

// AttachCooperatives wires the cooperative store into the delete policy.
func (r *RegionRepository) AttachCooperatives(idx cooperativeIndex) {
	r.coops = idx
}

// Totals reports the current store sizes.
func (r *RegionRepository) Totals() (provinces, cities, subdistricts int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.provinces), len(r.cities), len(r.subdistricts)
}

// --- Provinces ---

// ListProvinces returns one page of provinces matched by a case-insensitive
// name search, sorted by id descending. The total is the filtered count.
func (r *RegionRepository) ListProvinces(ctx context.Context, p ListParams) ([]models.Province, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, total := runQuery(r.provinces, query[models.Province]{
		search: p.Search,
		fields: func(v models.Province) []string { return []string{v.Name} },
		less:   func(a, b models.Province) bool { return a.ID > b.ID },
		params: p,
	})
	return items, total, nil
}

// GetProvince returns a province by id.
func (r *RegionRepository) GetProvince(ctx context.Context, id int) (models.Province, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Province{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.provinces {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Province{}, utils.NotFoundf("Provinsi dengan ID %d tidak ditemukan", id)
}

// CreateProvince adds a province with the next id.
func (r *RegionRepository) CreateProvince(ctx context.Context, name string) (models.Province, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Province{}, err
	}
	if len(strings.TrimSpace(name)) < 2 {
		return models.Province{}, utils.Invalidf("Nama provinsi minimal 2 karakter")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := models.Province{ID: r.provSeq.next(), Name: name}
	r.provinces = append(r.provinces, p)
	return p, nil
}

// UpdateProvince applies a partial update to a province.
func (r *RegionRepository) UpdateProvince(ctx context.Context, id int, upd models.ProvinceUpdate) (models.Province, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Province{}, err
	}
	if upd.Name != nil && len(strings.TrimSpace(*upd.Name)) < 2 {
		return models.Province{}, utils.Invalidf("Nama provinsi minimal 2 karakter")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.provinces {
		if r.provinces[i].ID == id {
			if upd.Name != nil {
				r.provinces[i].Name = *upd.Name
			}
			return r.provinces[i], nil
		}
	}
	return models.Province{}, utils.NotFoundf("Provinsi dengan ID %d tidak ditemukan", id)
}

// DeleteProvince removes a province. With cascade deletes enabled the whole
// subtree (cities, subdistricts, anchored cooperatives) goes with it;
// otherwise the delete is refused while dependants exist.
func (r *RegionRepository) DeleteProvince(ctx context.Context, id int) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.provinceExists(id) {
		return utils.NotFoundf("Provinsi dengan ID %d tidak ditemukan", id)
	}

	var cityIDs []int
	for _, c := range r.cities {
		if c.ProvinceID == id {
			cityIDs = append(cityIDs, c.ID)
		}
	}
	if !r.opts.CascadeDelete && len(cityIDs) > 0 {
		return utils.Dependentsf("Provinsi dengan ID %d masih memiliki %d kota", id, len(cityIDs))
	}
	if err := r.removeCities(cityIDs); err != nil {
		return err
	}
	r.provinces = removeByID(r.provinces, func(p models.Province) int { return p.ID }, []int{id})
	return nil
}

// --- Cities ---

// ListCities returns one page of cities, optionally scoped to a province
// (0 means no constraint), matched by name search, sorted by id descending.
func (r *RegionRepository) ListCities(ctx context.Context, p ListParams, provinceID int) ([]models.City, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := query[models.City]{
		search: p.Search,
		fields: func(v models.City) []string { return []string{v.Name} },
		less:   func(a, b models.City) bool { return a.ID > b.ID },
		params: p,
	}
	if provinceID != 0 {
		q.filters = append(q.filters, func(v models.City) bool { return v.ProvinceID == provinceID })
	}
	items, total := runQuery(r.cities, q)
	return items, total, nil
}

// GetCity returns a city by id.
func (r *RegionRepository) GetCity(ctx context.Context, id int) (models.City, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.City{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cities {
		if c.ID == id {
			return c, nil
		}
	}
	return models.City{}, utils.NotFoundf("Kota dengan ID %d tidak ditemukan", id)
}

// CreateCity adds a city under an existing province.
func (r *RegionRepository) CreateCity(ctx context.Context, name string, provinceID int) (models.City, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.City{}, err
	}
	if strings.TrimSpace(name) == "" || provinceID == 0 {
		return models.City{}, utils.Invalidf("Nama dan ID Provinsi harus diisi.")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.provinceExists(provinceID) {
		return models.City{}, utils.Referencef("Provinsi dengan ID %d tidak ditemukan", provinceID)
	}
	c := models.City{ID: r.citySeq.next(), Name: name, ProvinceID: provinceID}
	r.cities = append(r.cities, c)
	return c, nil
}

// UpdateCity applies a partial update to a city. A new province reference is
// validated before it is stored.
func (r *RegionRepository) UpdateCity(ctx context.Context, id int, upd models.CityUpdate) (models.City, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.City{}, err
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return models.City{}, utils.Invalidf("Nama kota tidak boleh kosong")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cities {
		if r.cities[i].ID != id {
			continue
		}
		if upd.ProvinceID != nil && !r.provinceExists(*upd.ProvinceID) {
			return models.City{}, utils.Referencef("Provinsi dengan ID %d tidak ditemukan", *upd.ProvinceID)
		}
		if upd.Name != nil {
			r.cities[i].Name = *upd.Name
		}
		if upd.ProvinceID != nil {
			r.cities[i].ProvinceID = *upd.ProvinceID
		}
		return r.cities[i], nil
	}
	return models.City{}, utils.NotFoundf("Kota dengan ID %d tidak ditemukan", id)
}

// DeleteCity removes a city, honoring the delete policy for its subdistricts.
func (r *RegionRepository) DeleteCity(ctx context.Context, id int) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.cityExists(id) {
		return utils.NotFoundf("Kota dengan ID %d tidak ditemukan", id)
	}
	return r.removeCities([]int{id})
}

// CitiesByProvince returns every city of a province, id ascending. This is the
// cascade-resolver read used to populate dependent selection inputs.
func (r *RegionRepository) CitiesByProvince(ctx context.Context, provinceID int) ([]models.City, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.provinceExists(provinceID) {
		return nil, utils.NotFoundf("Provinsi dengan ID %d tidak ditemukan", provinceID)
	}
	items, _ := runQuery(r.cities, query[models.City]{
		filters: []func(models.City) bool{func(v models.City) bool { return v.ProvinceID == provinceID }},
		less:    func(a, b models.City) bool { return a.ID < b.ID },
		params:  ListParams{Limit: len(r.cities) + 1},
	})
	return items, nil
}

// --- Subdistricts ---

// ListSubdistricts returns one page of subdistricts, optionally scoped to a
// city (0 means no constraint), matched by name search, sorted by id descending.
func (r *RegionRepository) ListSubdistricts(ctx context.Context, p ListParams, cityID int) ([]models.Subdistrict, int, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := query[models.Subdistrict]{
		search: p.Search,
		fields: func(v models.Subdistrict) []string { return []string{v.Name} },
		less:   func(a, b models.Subdistrict) bool { return a.ID > b.ID },
		params: p,
	}
	if cityID != 0 {
		q.filters = append(q.filters, func(v models.Subdistrict) bool { return v.CityID == cityID })
	}
	items, total := runQuery(r.subdistricts, q)
	return items, total, nil
}

// GetSubdistrict returns a subdistrict by id.
func (r *RegionRepository) GetSubdistrict(ctx context.Context, id int) (models.Subdistrict, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Subdistrict{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.subdistricts {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Subdistrict{}, utils.NotFoundf("Kecamatan dengan ID %d tidak ditemukan", id)
}

// CreateSubdistrict adds a subdistrict under an existing city.
func (r *RegionRepository) CreateSubdistrict(ctx context.Context, name string, cityID int) (models.Subdistrict, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Subdistrict{}, err
	}
	if strings.TrimSpace(name) == "" || cityID == 0 {
		return models.Subdistrict{}, utils.Invalidf("Nama dan ID Kota harus diisi.")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.cityExists(cityID) {
		return models.Subdistrict{}, utils.Referencef("Kota dengan ID %d tidak ditemukan", cityID)
	}
	s := models.Subdistrict{ID: r.subSeq.next(), Name: name, CityID: cityID}
	r.subdistricts = append(r.subdistricts, s)
	return s, nil
}

// UpdateSubdistrict applies a partial update to a subdistrict. A new city
// reference is validated before it is stored.
func (r *RegionRepository) UpdateSubdistrict(ctx context.Context, id int, upd models.SubdistrictUpdate) (models.Subdistrict, error) {
	if err := r.opts.wait(ctx); err != nil {
		return models.Subdistrict{}, err
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return models.Subdistrict{}, utils.Invalidf("Nama kecamatan tidak boleh kosong")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.subdistricts {
		if r.subdistricts[i].ID != id {
			continue
		}
		if upd.CityID != nil && !r.cityExists(*upd.CityID) {
			return models.Subdistrict{}, utils.Referencef("Kota dengan ID %d tidak ditemukan", *upd.CityID)
		}
		if upd.Name != nil {
			r.subdistricts[i].Name = *upd.Name
		}
		if upd.CityID != nil {
			r.subdistricts[i].CityID = *upd.CityID
		}
		return r.subdistricts[i], nil
	}
	return models.Subdistrict{}, utils.NotFoundf("Kecamatan dengan ID %d tidak ditemukan", id)
}

// DeleteSubdistrict removes a subdistrict, honoring the delete policy for the
// cooperatives anchored to it.
func (r *RegionRepository) DeleteSubdistrict(ctx context.Context, id int) error {
	if err := r.opts.wait(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.subdistrictExists(id) {
		return utils.NotFoundf("Kecamatan dengan ID %d tidak ditemukan", id)
	}
	return r.removeSubdistricts([]int{id})
}

// SubdistrictsByCity returns every subdistrict of a city, id ascending.
func (r *RegionRepository) SubdistrictsByCity(ctx context.Context, cityID int) ([]models.Subdistrict, error) {
	if err := r.opts.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.cityExists(cityID) {
		return nil, utils.NotFoundf("Kota dengan ID %d tidak ditemukan", cityID)
	}
	items, _ := runQuery(r.subdistricts, query[models.Subdistrict]{
		filters: []func(models.Subdistrict) bool{func(v models.Subdistrict) bool { return v.CityID == cityID }},
		less:    func(a, b models.Subdistrict) bool { return a.ID < b.ID },
		params:  ListParams{Limit: len(r.subdistricts) + 1},
	})
	return items, nil
}

// ValidateChain verifies that the three region ids nest correctly: the
// subdistrict belongs to the city and the city belongs to the province.
func (r *RegionRepository) ValidateChain(provinceID, cityID, subdistrictID int) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sub *models.Subdistrict
	for i := range r.subdistricts {
		if r.subdistricts[i].ID == subdistrictID {
			sub = &r.subdistricts[i]
			break
		}
	}
	if sub == nil {
		return utils.Referencef("Kecamatan dengan ID %d tidak ditemukan", subdistrictID)
	}
	if sub.CityID != cityID {
		return utils.Referencef("Kecamatan %d bukan bagian dari kota %d", subdistrictID, cityID)
	}

	var city *models.City
	for i := range r.cities {
		if r.cities[i].ID == cityID {
			city = &r.cities[i]
			break
		}
	}
	if city == nil {
		return utils.Referencef("Kota dengan ID %d tidak ditemukan", cityID)
	}
	if city.ProvinceID != provinceID {
		return utils.Referencef("Kota %d bukan bagian dari provinsi %d", cityID, provinceID)
	}
	if !r.provinceExists(provinceID) {
		return utils.Referencef("Provinsi dengan ID %d tidak ditemukan", provinceID)
	}
	return nil
}

// --- internals (caller holds the lock) ---

func (r *RegionRepository) provinceExists(id int) bool {
	for _, p := range r.provinces {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (r *RegionRepository) cityExists(id int) bool {
	for _, c := range r.cities {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (r *RegionRepository) subdistrictExists(id int) bool {
	for _, s := range r.subdistricts {
		if s.ID == id {
			return true
		}
	}
	return false
}

// removeCities deletes the given cities and, per policy, their subdistricts.
func (r *RegionRepository) removeCities(cityIDs []int) error {
	if len(cityIDs) == 0 {
		return nil
	}
	var subIDs []int
	for _, s := range r.subdistricts {
		if containsID(cityIDs, s.CityID) {
			subIDs = append(subIDs, s.ID)
		}
	}
	if !r.opts.CascadeDelete && len(subIDs) > 0 {
		return utils.Dependentsf("Kota dengan ID %d masih memiliki %d kecamatan", cityIDs[0], len(subIDs))
	}
	if err := r.removeSubdistricts(subIDs); err != nil {
		return err
	}
	r.cities = removeByID(r.cities, func(c models.City) int { return c.ID }, cityIDs)
	return nil
}

// removeSubdistricts deletes the given subdistricts and, per policy, the
// cooperatives anchored to them.
func (r *RegionRepository) removeSubdistricts(subIDs []int) error {
	if len(subIDs) == 0 {
		return nil
	}
	if r.coops != nil {
		if n := r.coops.countBySubdistricts(subIDs); n > 0 {
			if !r.opts.CascadeDelete {
				return utils.Dependentsf("Kecamatan dengan ID %d masih memiliki %d koperasi", subIDs[0], n)
			}
			r.coops.removeBySubdistricts(subIDs)
		}
	}
	r.subdistricts = removeByID(r.subdistricts, func(s models.Subdistrict) int { return s.ID }, subIDs)
	return nil
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeByID filters out records whose id is in ids, preserving order.
func removeByID[T any](records []T, idOf func(T) int, ids []int) []T {
	if len(ids) == 0 {
		return records
	}
	kept := records[:0]
	for _, rec := range records {
		if !containsID(ids, idOf(rec)) {
			kept = append(kept, rec)
		}
	}
	return kept
}
