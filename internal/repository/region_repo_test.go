package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// testRegions builds a two-province fixture with one city and one subdistrict
// per province.
func testRegions(opts Options) *RegionRepository {
	return NewRegionRepository(opts,
		[]models.Province{{ID: 11, Name: "Aceh"}, {ID: 51, Name: "Bali"}},
		[]models.City{
			{ID: 1171, Name: "Kota Banda Aceh", ProvinceID: 11},
			{ID: 5171, Name: "Kota Denpasar", ProvinceID: 51},
		},
		[]models.Subdistrict{
			{ID: 117101, Name: "Kuta Alam", CityID: 1171},
			{ID: 517101, Name: "Denpasar Selatan", CityID: 5171},
		},
	)
}

func TestListProvincesFirstPageLimitOne(t *testing.T) {
	r := testRegions(Options{})

	items, total, err := r.ListProvinces(context.Background(), ListParams{Page: 1, Limit: 1})
	require.NoError(t, err)

	// Sorted by id descending: Bali (51) before Aceh (11).
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Bali", items[0].Name)
}

func TestListProvincesSearchIsCaseInsensitive(t *testing.T) {
	r := testRegions(Options{})

	items, total, err := r.ListProvinces(context.Background(), ListParams{Search: "aCeH"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Aceh", items[0].Name)
}

func TestGetProvinceNotFound(t *testing.T) {
	r := testRegions(Options{})

	_, err := r.GetProvince(context.Background(), 99)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.EqualError(t, err, "Provinsi dengan ID 99 tidak ditemukan")
}

func TestCreateProvinceRejectsShortName(t *testing.T) {
	r := testRegions(Options{})

	_, err := r.CreateProvince(context.Background(), " a ")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateProvinceAssignsNextID(t *testing.T) {
	r := testRegions(Options{})

	p, err := r.CreateProvince(context.Background(), "Papua Tengah")
	require.NoError(t, err)
	assert.Equal(t, 52, p.ID)
}

func TestConcurrentCreatesYieldUniqueIDs(t *testing.T) {
	r := testRegions(Options{})

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := r.CreateProvince(context.Background(), "Provinsi Baru")
			if assert.NoError(t, err) {
				ids <- p.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestCreateCityRequiresNameAndProvince(t *testing.T) {
	r := testRegions(Options{})

	_, err := r.CreateCity(context.Background(), "Kota Baru", 0)
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.EqualError(t, err, "Nama dan ID Provinsi harus diisi.")

	_, err = r.CreateCity(context.Background(), "", 11)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateCityRejectsUnknownProvince(t *testing.T) {
	r := testRegions(Options{})

	_, err := r.CreateCity(context.Background(), "Kota Baru", 99)
	assert.ErrorIs(t, err, utils.ErrInvalidReference)
}

func TestListCitiesScopedToProvince(t *testing.T) {
	r := testRegions(Options{})

	items, total, err := r.ListCities(context.Background(), ListParams{}, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Kota Banda Aceh", items[0].Name)

	// provinceID 0 means no constraint.
	_, total, err = r.ListCities(context.Background(), ListParams{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestCitiesByProvinceAscendingAndValidated(t *testing.T) {
	r := testRegions(Options{})
	_, err := r.CreateCity(context.Background(), "Kota Sabang", 11)
	require.NoError(t, err)

	cities, err := r.CitiesByProvince(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Less(t, cities[0].ID, cities[1].ID)

	_, err = r.CitiesByProvince(context.Background(), 99)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDeleteProvinceRestrictedWhileCitiesExist(t *testing.T) {
	r := testRegions(Options{})

	err := r.DeleteProvince(context.Background(), 11)
	assert.ErrorIs(t, err, utils.ErrHasDependents)

	// Still there.
	_, err = r.GetProvince(context.Background(), 11)
	assert.NoError(t, err)
}

func TestDeleteProvinceCascadeRemovesSubtree(t *testing.T) {
	r := testRegions(Options{CascadeDelete: true})
	coops := NewCooperativeRepository(Options{CascadeDelete: true}, r, []models.Cooperative{
		{ID: 1, Name: "Koperasi Kuta Alam", ProvinceID: 11, CityID: 1171, SubdistrictID: 117101},
	})

	require.NoError(t, r.DeleteProvince(context.Background(), 11))

	_, err := r.GetCity(context.Background(), 1171)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	_, err = r.GetSubdistrict(context.Background(), 117101)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, 0, coops.Total())
}

func TestDeleteSubdistrictRestrictedWhileCooperativesExist(t *testing.T) {
	r := testRegions(Options{})
	NewCooperativeRepository(Options{}, r, []models.Cooperative{
		{ID: 1, Name: "Koperasi Kuta Alam", ProvinceID: 11, CityID: 1171, SubdistrictID: 117101},
	})

	err := r.DeleteSubdistrict(context.Background(), 117101)
	assert.ErrorIs(t, err, utils.ErrHasDependents)
}

func TestUpdateCityValidatesNewProvinceReference(t *testing.T) {
	r := testRegions(Options{})

	bad := 99
	_, err := r.UpdateCity(context.Background(), 1171, models.CityUpdate{ProvinceID: &bad})
	assert.ErrorIs(t, err, utils.ErrInvalidReference)

	good := 51
	city, err := r.UpdateCity(context.Background(), 1171, models.CityUpdate{ProvinceID: &good})
	require.NoError(t, err)
	assert.Equal(t, 51, city.ProvinceID)
}

func TestValidateChain(t *testing.T) {
	r := testRegions(Options{})

	assert.NoError(t, r.ValidateChain(11, 1171, 117101))

	// Subdistrict belongs to another city.
	err := r.ValidateChain(11, 1171, 517101)
	assert.ErrorIs(t, err, utils.ErrInvalidReference)

	// City belongs to another province.
	err = r.ValidateChain(11, 5171, 517101)
	assert.ErrorIs(t, err, utils.ErrInvalidReference)

	// Unknown subdistrict.
	err = r.ValidateChain(11, 1171, 999999)
	assert.ErrorIs(t, err, utils.ErrInvalidReference)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	r := testRegions(Options{CascadeDelete: true})

	require.NoError(t, r.DeleteProvince(context.Background(), 51))
	err := r.DeleteProvince(context.Background(), 51)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestStoreLatencyHonorsContextCancellation(t *testing.T) {
	r := testRegions(Options{Latency: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := r.ListProvinces(ctx, ListParams{})
	assert.ErrorIs(t, err, context.Canceled)
}
