package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
)

type geographyStore struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewGeographyStore(db *gorm.DB) *geographyStore {
	return &geographyStore{db: db, clock: time.Now}
}

func (s *geographyStore) ListCities(ctx context.Context) ([]*models.City, error) {
	var cities []*models.City
	err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order(listOrder).
		Find(&cities).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "city")
	}
	return cities, nil
}

// ListDistricts returns the active districts of an active city. An unknown
// city simply yields no rows.
func (s *geographyStore) ListDistricts(ctx context.Context, cityID string) ([]*models.District, error) {
	var districts []*models.District
	err := s.db.WithContext(ctx).
		Joins("JOIN cities ON cities.id = districts.city_id AND cities.status = ?", models.StatusActive).
		Where("districts.city_id = ? AND districts.status = ?", cityID, models.StatusActive).
		Order("districts.updated_at DESC").
		Find(&districts).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "district")
	}
	return districts, nil
}

func (s *geographyStore) ListVillages(ctx context.Context, districtID string) ([]*models.Village, error) {
	var villages []*models.Village
	err := s.db.WithContext(ctx).
		Joins("JOIN districts ON districts.id = villages.district_id AND districts.status = ?", models.StatusActive).
		Joins("JOIN cities ON cities.id = districts.city_id AND cities.status = ?", models.StatusActive).
		Where("villages.district_id = ? AND villages.status = ?", districtID, models.StatusActive).
		Order("villages.updated_at DESC").
		Find(&villages).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "village")
	}
	return villages, nil
}

func (s *geographyStore) GetCity(ctx context.Context, id string) (*models.City, error) {
	return FetchActiveByID[models.City](ctx, s.db, id)
}

func (s *geographyStore) GetDistrict(ctx context.Context, id string) (*models.District, error) {
	return FetchActiveByID[models.District](ctx, s.db, id)
}

func (s *geographyStore) GetVillage(ctx context.Context, id string) (*models.Village, error) {
	return FetchActiveByID[models.Village](ctx, s.db, id)
}

func (s *geographyStore) CreateCity(ctx context.Context, city *models.City) error {
	return insert(ctx, s.db, s.clock(), city)
}

func (s *geographyStore) CreateDistrict(ctx context.Context, district *models.District) error {
	return insert(ctx, s.db, s.clock(), district)
}

func (s *geographyStore) CreateVillage(ctx context.Context, village *models.Village) error {
	return insert(ctx, s.db, s.clock(), village)
}

// DeleteCity physically removes a city; the foreign keys cascade the delete
// to its districts and their villages.
func (s *geographyStore) DeleteCity(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.City{})
	if res.Error != nil {
		return translate(ctx, res.Error, "delete", "city")
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("city not found")
	}
	return nil
}
