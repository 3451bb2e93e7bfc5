package shared

import "fmt"

// OptimizationMode is the objective the optimizer minimizes when
// choosing among routing alternatives.
type OptimizationMode string

const (
	ModeCost     OptimizationMode = "cost"
	ModeTime     OptimizationMode = "time"
	ModeBalanced OptimizationMode = "balanced"
)

// AllModes returns the modes in their canonical order
func AllModes() []OptimizationMode {
	return []OptimizationMode{ModeCost, ModeTime, ModeBalanced}
}

// ParseMode converts a string into an OptimizationMode
func ParseMode(s string) (OptimizationMode, error) {
	switch OptimizationMode(s) {
	case ModeCost, ModeTime, ModeBalanced:
		return OptimizationMode(s), nil
	default:
		return "", NewValidationError("mode", fmt.Sprintf("unknown optimization mode %q", s))
	}
}

func (m OptimizationMode) String() string {
	return string(m)
}
