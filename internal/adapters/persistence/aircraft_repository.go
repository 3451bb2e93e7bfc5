package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aerologix/charterplan/internal/domain/routing"
)

// GormAircraftRepository implements planning.AircraftRepository over gorm
type GormAircraftRepository struct {
	db *gorm.DB
}

// NewGormAircraftRepository creates a new aircraft repository
func NewGormAircraftRepository(db *gorm.DB) *GormAircraftRepository {
	return &GormAircraftRepository{db: db}
}

// FindByTail returns the aircraft or nil when absent
func (r *GormAircraftRepository) FindByTail(ctx context.Context, tail string) (*routing.Aircraft, error) {
	var model AircraftModel
	err := r.db.WithContext(ctx).First(&model, "tail = ?", tail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return aircraftToDomain(&model), nil
}

// ListAll returns every aircraft on file ordered by tail number
func (r *GormAircraftRepository) ListAll(ctx context.Context) ([]*routing.Aircraft, error) {
	var models []AircraftModel
	if err := r.db.WithContext(ctx).Order("tail").Find(&models).Error; err != nil {
		return nil, err
	}
	fleet := make([]*routing.Aircraft, 0, len(models))
	for i := range models {
		fleet = append(fleet, aircraftToDomain(&models[i]))
	}
	return fleet, nil
}

// Save upserts reference data for one aircraft
func (r *GormAircraftRepository) Save(ctx context.Context, aircraft *routing.Aircraft) error {
	return r.db.WithContext(ctx).Save(&AircraftModel{
		Tail:           aircraft.Tail,
		Category:       string(aircraft.Category),
		RangeNM:        aircraft.RangeNM,
		CruiseSpeedKts: aircraft.CruiseSpeedKts,
		FuelBurnGPH:    aircraft.FuelBurnGPH,
		HomeBase:       aircraft.HomeBase,
		Seats:          aircraft.Seats,
	}).Error
}

func aircraftToDomain(m *AircraftModel) *routing.Aircraft {
	return &routing.Aircraft{
		Tail:           m.Tail,
		Category:       routing.Category(m.Category),
		RangeNM:        m.RangeNM,
		CruiseSpeedKts: m.CruiseSpeedKts,
		FuelBurnGPH:    m.FuelBurnGPH,
		HomeBase:       m.HomeBase,
		Seats:          m.Seats,
	}
}
