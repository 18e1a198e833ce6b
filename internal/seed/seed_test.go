package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koperasindo/koperasi-api/internal/models"
)

func TestRegionsDecodeAndNestConsistently(t *testing.T) {
	provinces, cities, subdistricts, err := Regions()
	require.NoError(t, err)
	assert.Len(t, provinces, 34)
	assert.NotEmpty(t, cities)
	assert.NotEmpty(t, subdistricts)

	provByID := map[int]bool{}
	for _, p := range provinces {
		assert.False(t, provByID[p.ID], "duplicate province id %d", p.ID)
		provByID[p.ID] = true
	}
	cityByID := map[int]bool{}
	for _, c := range cities {
		assert.True(t, provByID[c.ProvinceID], "city %d references unknown province %d", c.ID, c.ProvinceID)
		cityByID[c.ID] = true
	}
	for _, s := range subdistricts {
		assert.True(t, cityByID[s.CityID], "subdistrict %d references unknown city %d", s.ID, s.CityID)
	}
}

func TestSeedRecordsReferenceValidChains(t *testing.T) {
	_, cities, subdistricts, err := Regions()
	require.NoError(t, err)

	cityOf := map[int]models.City{}
	for _, c := range cities {
		cityOf[c.ID] = c
	}
	subOf := map[int]models.Subdistrict{}
	for _, s := range subdistricts {
		subOf[s.ID] = s
	}

	coops := Cooperatives()
	require.NotEmpty(t, coops)
	coopByID := map[int]bool{}
	for _, co := range coops {
		coopByID[co.ID] = true
		sub, ok := subOf[co.SubdistrictID]
		require.True(t, ok, "cooperative %d references unknown subdistrict %d", co.ID, co.SubdistrictID)
		assert.Equal(t, co.CityID, sub.CityID, "cooperative %d chain broken at city", co.ID)
		city := cityOf[co.CityID]
		assert.Equal(t, co.ProvinceID, city.ProvinceID, "cooperative %d chain broken at province", co.ID)
	}

	for _, rec := range append(SavingReports(), LoanReports()...) {
		assert.True(t, coopByID[rec.CooperativeID], "report %d references unknown cooperative %d", rec.ID, rec.CooperativeID)
	}
	for _, req := range Requests() {
		assert.True(t, coopByID[req.CooperativeID], "request %d references unknown cooperative %d", req.ID, req.CooperativeID)
	}
}

func TestSeedUsersHaveHashedPasswords(t *testing.T) {
	users, err := Users()
	require.NoError(t, err)
	require.NotEmpty(t, users)
	for _, u := range users {
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "rahasia123", u.PasswordHash)
	}
}
