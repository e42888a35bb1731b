package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

type geographyStore interface {
	ListCities(ctx context.Context) ([]*models.City, error)
	ListDistricts(ctx context.Context, cityID string) ([]*models.District, error)
	ListVillages(ctx context.Context, districtID string) ([]*models.Village, error)
	CreateCity(ctx context.Context, city *models.City) error
	CreateDistrict(ctx context.Context, district *models.District) error
	CreateVillage(ctx context.Context, village *models.Village) error
	DeleteCity(ctx context.Context, id string) error
}

type geographyService struct {
	store geographyStore
}

func NewGeographyService(store geographyStore) *geographyService {
	return &geographyService{store: store}
}

func (s *geographyService) ListCities(ctx context.Context) ([]dto.CityResponse, error) {
	cities, err := s.store.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCityList(cities), nil
}

func (s *geographyService) ListDistricts(ctx context.Context, cityID string) ([]dto.DistrictResponse, error) {
	districts, err := s.store.ListDistricts(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return dto.NewDistrictList(districts), nil
}

func (s *geographyService) ListVillages(ctx context.Context, districtID string) ([]dto.VillageResponse, error) {
	villages, err := s.store.ListVillages(ctx, districtID)
	if err != nil {
		return nil, err
	}
	return dto.NewVillageList(villages), nil
}

// Seed creates every city, district and village in seed. The whole seed is
// validated first; a store failure stops it and earlier rows are kept.
func (s *geographyService) Seed(ctx context.Context, seed dto.GeographySeed) (int, error) {
	if err := validateSeed(seed); err != nil {
		return 0, err
	}

	log := logger.FromContext(ctx)
	created := 0
	for _, c := range seed.Cities {
		city := &models.City{Name: c.Name, Type: c.Type}
		if err := s.store.CreateCity(ctx, city); err != nil {
			return created, err
		}
		created++
		for _, d := range c.Districts {
			district := &models.District{Name: d.Name, Type: d.Type, CityID: &city.ID}
			if err := s.store.CreateDistrict(ctx, district); err != nil {
				return created, err
			}
			created++
			for _, v := range d.Villages {
				village := &models.Village{Name: v.Name, Type: v.Type, DistrictID: &district.ID}
				if err := s.store.CreateVillage(ctx, village); err != nil {
					return created, err
				}
				created++
			}
		}
		log.Debug("seeded city", "city_id", city.ID, "name", city.Name, "districts", len(c.Districts))
	}
	log.Info("geography seeded", "rows", created)
	return created, nil
}

// validateSeed requires a name on every row.
func validateSeed(seed dto.GeographySeed) error {
	for i, c := range seed.Cities {
		if strings.TrimSpace(c.Name) == "" {
			return errs.NewValidationError(fmt.Sprintf("cities[%d]: name is required", i))
		}
		for j, d := range c.Districts {
			if strings.TrimSpace(d.Name) == "" {
				return errs.NewValidationError(fmt.Sprintf("%s districts[%d]: name is required", c.Name, j))
			}
			for k, v := range d.Villages {
				if strings.TrimSpace(v.Name) == "" {
					return errs.NewValidationError(fmt.Sprintf("%s/%s villages[%d]: name is required", c.Name, d.Name, k))
				}
			}
		}
	}
	return nil
}

func (s *geographyService) DeleteCity(ctx context.Context, id string) error {
	if err := s.store.DeleteCity(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("city deleted with its districts and villages", "city_id", id)
	return nil
}
