package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aerologix/charterplan/internal/domain/planning"
)

// GormRoutePlanRepository implements planning.RoutePlanRepository.
// Append-only: stored plans are immutable historical facts, so Save
// refuses to overwrite an existing ID.
type GormRoutePlanRepository struct {
	db *gorm.DB
}

// NewGormRoutePlanRepository creates a new route plan repository
func NewGormRoutePlanRepository(db *gorm.DB) *GormRoutePlanRepository {
	return &GormRoutePlanRepository{db: db}
}

// Save inserts a plan snapshot. Fails on duplicate ID rather than update.
func (r *GormRoutePlanRepository) Save(ctx context.Context, plan *planning.RoutePlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan %s: %w", plan.ID, err)
	}
	model := &RoutePlanModel{
		ID:           plan.ID,
		AircraftTail: plan.AircraftTail,
		Mode:         string(plan.Mode),
		TotalUSD:     plan.Breakdown.Total.StringFixed(2),
		RiskScore:    plan.RiskScore,
		Payload:      string(payload),
		ComputedAt:   plan.ComputedAt,
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID returns the stored plan or nil when absent
func (r *GormRoutePlanRepository) FindByID(ctx context.Context, id string) (*planning.RoutePlan, error) {
	var model RoutePlanModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return planFromModel(&model)
}

// ListByTail returns stored plans for one aircraft, newest first
func (r *GormRoutePlanRepository) ListByTail(ctx context.Context, tail string) ([]*planning.RoutePlan, error) {
	var models []RoutePlanModel
	err := r.db.WithContext(ctx).
		Where("aircraft_tail = ?", tail).
		Order("computed_at desc").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	plans := make([]*planning.RoutePlan, 0, len(models))
	for i := range models {
		plan, err := planFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func planFromModel(m *RoutePlanModel) (*planning.RoutePlan, error) {
	var plan planning.RoutePlan
	if err := json.Unmarshal([]byte(m.Payload), &plan); err != nil {
		return nil, fmt.Errorf("corrupt plan snapshot %s: %w", m.ID, err)
	}
	return &plan, nil
}
