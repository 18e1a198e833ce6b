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

// testCooperatives builds a cooperative store over the shared region fixture,
// with one cooperative per subdistrict.
func testCooperatives(opts Options) (*RegionRepository, *CooperativeRepository) {
	regions := testRegions(opts)
	coops := NewCooperativeRepository(opts, regions, []models.Cooperative{
		{ID: 1, Name: "Koperasi Kuta Alam", ProvinceID: 11, CityID: 1171, SubdistrictID: 117101},
		{ID: 2, Name: "Koperasi Denpasar Sejahtera", ProvinceID: 51, CityID: 5171, SubdistrictID: 517101},
	})
	return regions, coops
}

func TestCreateCooperativeRequiresAllFields(t *testing.T) {
	_, coops := testCooperatives(Options{})

	for _, in := range []models.CooperativeInput{
		{Name: "", ProvinceID: 11, CityID: 1171, SubdistrictID: 117101},
		{Name: "Koperasi Baru", CityID: 1171, SubdistrictID: 117101},
		{Name: "Koperasi Baru", ProvinceID: 11, SubdistrictID: 117101},
		{Name: "Koperasi Baru", ProvinceID: 11, CityID: 1171},
	} {
		_, err := coops.Create(context.Background(), in)
		assert.ErrorIs(t, err, utils.ErrValidation)
		assert.EqualError(t, err, "Semua field harus diisi.")
	}
}

func TestCreateCooperativeRejectsBrokenChain(t *testing.T) {
	_, coops := testCooperatives(Options{})

	// Subdistrict exists but belongs to the Bali city.
	_, err := coops.Create(context.Background(), models.CooperativeInput{
		Name: "Koperasi Baru", ProvinceID: 11, CityID: 1171, SubdistrictID: 517101,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidReference)
}

func TestCreateCooperativeValidChain(t *testing.T) {
	_, coops := testCooperatives(Options{})

	c, err := coops.Create(context.Background(), models.CooperativeInput{
		Name: "Koperasi Baru", ProvinceID: 11, CityID: 1171, SubdistrictID: 117101,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
}

func TestListCooperativesScopeFiltersAreConjunctive(t *testing.T) {
	_, coops := testCooperatives(Options{})

	items, total, err := coops.List(context.Background(), ListParams{}, models.CooperativeScope{
		ProvinceID: 11, SubdistrictID: 117101,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Koperasi Kuta Alam", items[0].Name)

	// Mixed scope from two provinces matches nothing.
	_, total, err = coops.List(context.Background(), ListParams{}, models.CooperativeScope{
		ProvinceID: 11, SubdistrictID: 517101,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestListCooperativesSearchByName(t *testing.T) {
	_, coops := testCooperatives(Options{})

	items, total, err := coops.List(context.Background(), ListParams{Search: "denpasar"}, models.CooperativeScope{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestUpdateCooperativeRevalidatesChain(t *testing.T) {
	_, coops := testCooperatives(Options{})

	// Moving only the subdistrict to another province's chain must fail.
	sub := 517101
	_, err := coops.Update(context.Background(), 1, models.CooperativeUpdate{SubdistrictID: &sub})
	assert.ErrorIs(t, err, utils.ErrInvalidReference)

	// Moving the full chain together is fine.
	prov, city := 51, 5171
	c, err := coops.Update(context.Background(), 1, models.CooperativeUpdate{
		ProvinceID: &prov, CityID: &city, SubdistrictID: &sub,
	})
	require.NoError(t, err)
	assert.Equal(t, 517101, c.SubdistrictID)
}

func TestUpdateCooperativeNameOnlySkipsChainCheck(t *testing.T) {
	_, coops := testCooperatives(Options{})

	name := "Koperasi Kuta Alam Baru"
	c, err := coops.Update(context.Background(), 1, models.CooperativeUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, c.Name)
}

func TestBySubdistrictAscending(t *testing.T) {
	_, coops := testCooperatives(Options{})
	_, err := coops.Create(context.Background(), models.CooperativeInput{
		Name: "Koperasi Kuta Alam Kedua", ProvinceID: 11, CityID: 1171, SubdistrictID: 117101,
	})
	require.NoError(t, err)

	items, err := coops.BySubdistrict(context.Background(), 117101)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Less(t, items[0].ID, items[1].ID)
}

func TestConcurrentUpdatesAndRegionDeletesComplete(t *testing.T) {
	// Updates touching region fields and region deletes counting dependants
	// cross store boundaries in opposite directions; both must settle on the
	// region-before-cooperative lock order or the process wedges.
	regions, coops := testCooperatives(Options{})

	var wg sync.WaitGroup
	ctx := context.Background()
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prov, city, sub := 11, 1171, 117101
			for j := 0; j < 200; j++ {
				_, _ = coops.Update(ctx, 1, models.CooperativeUpdate{
					ProvinceID: &prov, CityID: &city, SubdistrictID: &sub,
				})
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				// Refused with ErrHasDependents while cooperative 1 exists,
				// but still takes the region lock and consults this store.
				_ = regions.DeleteSubdistrict(ctx, 117101)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent updates and region deletes did not complete")
	}

	c, err := coops.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 117101, c.SubdistrictID)
}

func TestUpdateCooperativeRetriesOverConcurrentWrite(t *testing.T) {
	_, coops := testCooperatives(Options{})

	var wg sync.WaitGroup
	ctx := context.Background()
	names := []string{"Koperasi A", "Koperasi B", "Koperasi C", "Koperasi D"}
	for i := range names {
		name := names[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := coops.Update(ctx, 1, models.CooperativeUpdate{Name: &name})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := coops.Get(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, names, c.Name)
}

func TestDeleteCooperative(t *testing.T) {
	_, coops := testCooperatives(Options{})

	require.NoError(t, coops.Delete(context.Background(), 1))
	assert.False(t, coops.Exists(1))
	assert.ErrorIs(t, coops.Delete(context.Background(), 1), utils.ErrNotFound)
}
