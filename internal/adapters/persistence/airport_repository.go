package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/shared"
)

// GormAirportRepository implements planning.AirportRepository over gorm
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new airport repository
func NewGormAirportRepository(db *gorm.DB) *GormAirportRepository {
	return &GormAirportRepository{db: db}
}

// FindByICAO returns the airport or nil when absent
func (r *GormAirportRepository) FindByICAO(ctx context.Context, icao string) (*geo.Airport, error) {
	var model AirportModel
	err := r.db.WithContext(ctx).First(&model, "icao = ?", shared.NormalizeICAO(icao)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return airportToDomain(&model), nil
}

// ListAll returns every airport on file
func (r *GormAirportRepository) ListAll(ctx context.Context) ([]*geo.Airport, error) {
	var models []AirportModel
	if err := r.db.WithContext(ctx).Order("icao").Find(&models).Error; err != nil {
		return nil, err
	}
	airports := make([]*geo.Airport, 0, len(models))
	for i := range models {
		airports = append(airports, airportToDomain(&models[i]))
	}
	return airports, nil
}

// Save upserts reference data for one airport
func (r *GormAirportRepository) Save(ctx context.Context, airport *geo.Airport) error {
	return r.db.WithContext(ctx).Save(airportToModel(airport)).Error
}

func airportToDomain(m *AirportModel) *geo.Airport {
	return &geo.Airport{
		ICAO:            m.ICAO,
		Name:            m.Name,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		CountryCode:     m.CountryCode,
		LongestRunwayFt: m.LongestRunwayFt,
		HasFuel:         m.HasFuel != 0,
		FuelPricePerGal: m.FuelPricePerGal,
		FBOFee:          m.FBOFee,
		HasCustoms:      m.HasCustoms != 0,
		HasDeicing:      m.HasDeicing != 0,
	}
}

func airportToModel(a *geo.Airport) *AirportModel {
	return &AirportModel{
		ICAO:            a.ICAO,
		Name:            a.Name,
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,
		CountryCode:     a.CountryCode,
		LongestRunwayFt: a.LongestRunwayFt,
		HasFuel:         boolToInt(a.HasFuel),
		FuelPricePerGal: a.FuelPricePerGal,
		FBOFee:          a.FBOFee,
		HasCustoms:      boolToInt(a.HasCustoms),
		HasDeicing:      boolToInt(a.HasDeicing),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
