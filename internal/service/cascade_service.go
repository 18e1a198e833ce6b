package service

import (
	"context"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
)

// CascadeService resolves the next level of the region hierarchy for a
// selected parent: province → cities, city → subdistricts, subdistrict →
// cooperatives. It is a read-only composition of the stores, used to populate
// dependent selection inputs.
type CascadeService struct {
	regions *repository.RegionRepository
	coops   *repository.CooperativeRepository
}

// NewCascadeService constructs a CascadeService.
func NewCascadeService(regions *repository.RegionRepository, coops *repository.CooperativeRepository) *CascadeService {
	return &CascadeService{regions: regions, coops: coops}
}

// CitiesOf returns the valid cities for a selected province.
func (s *CascadeService) CitiesOf(ctx context.Context, provinceID int) ([]models.City, error) {
	return s.regions.CitiesByProvince(ctx, provinceID)
}

// SubdistrictsOf returns the valid subdistricts for a selected city.
func (s *CascadeService) SubdistrictsOf(ctx context.Context, cityID int) ([]models.Subdistrict, error) {
	return s.regions.SubdistrictsByCity(ctx, cityID)
}

// CooperativesOf returns the valid cooperatives for a selected subdistrict.
func (s *CascadeService) CooperativesOf(ctx context.Context, subdistrictID int) ([]models.Cooperative, error) {
	if _, err := s.regions.GetSubdistrict(ctx, subdistrictID); err != nil {
		return nil, err
	}
	return s.coops.BySubdistrict(ctx, subdistrictID)
}
