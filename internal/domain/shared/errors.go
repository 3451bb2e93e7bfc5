package shared

import "fmt"

// ErrorCode is a stable machine-readable failure code. Callers map these
// to transport-level statuses; this core never does that mapping itself.
type ErrorCode string

const (
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeAircraftNotFound ErrorCode = "AIRCRAFT_NOT_FOUND"
	ErrCodeUnknownAirport   ErrorCode = "UNKNOWN_AIRPORT"
	ErrCodeNoRoute          ErrorCode = "NO_ROUTE"
	ErrCodeNoCandidate      ErrorCode = "NO_CANDIDATE"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// DomainCode exposes the stable code; wrapping types inherit it.
func (e *DomainError) DomainCode() ErrorCode { return e.Code }

func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Input validation errors

type ValidationError struct {
	*DomainError
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		DomainError: &DomainError{Code: ErrCodeInvalidInput, Message: message},
		Field:       field,
	}
}

// Feasibility errors

// NoRouteError reports that a leg cannot be subdivided within range and
// search constraints. ShortfallNM carries the best partial diagnostic:
// how far beyond usable range the unsolvable segment still was.
type NoRouteError struct {
	*DomainError
	From        string
	To          string
	ShortfallNM float64
}

func NewNoRouteError(from, to string, shortfallNM float64) *NoRouteError {
	return &NoRouteError{
		DomainError: &DomainError{
			Code: ErrCodeNoRoute,
			Message: fmt.Sprintf("no refuel stop satisfies range for %s → %s (%.0f nm beyond usable range)",
				from, to, shortfallNM),
		},
		From:        from,
		To:          to,
		ShortfallNM: shortfallNM,
	}
}

type AircraftNotFoundError struct {
	*DomainError
	Tail string
}

func NewAircraftNotFoundError(tail string) *AircraftNotFoundError {
	return &AircraftNotFoundError{
		DomainError: &DomainError{
			Code:    ErrCodeAircraftNotFound,
			Message: fmt.Sprintf("aircraft %s not found", tail),
		},
		Tail: tail,
	}
}

type UnknownAirportError struct {
	*DomainError
	ICAO string
}

func NewUnknownAirportError(icao string) *UnknownAirportError {
	return &UnknownAirportError{
		DomainError: &DomainError{
			Code:    ErrCodeUnknownAirport,
			Message: fmt.Sprintf("airport %s not in reference data", icao),
		},
		ICAO: icao,
	}
}

// NoCandidateError reports that every aircraft in a selection set failed
// to produce a feasible plan.
type NoCandidateError struct {
	*DomainError
	Failures map[string]error
}

func NewNoCandidateError(failures map[string]error) *NoCandidateError {
	return &NoCandidateError{
		DomainError: &DomainError{
			Code:    ErrCodeNoCandidate,
			Message: fmt.Sprintf("all %d candidate aircraft failed", len(failures)),
		},
		Failures: failures,
	}
}

// CodeOf extracts the stable code from a domain error.
// Returns empty string for non-domain errors.
func CodeOf(err error) ErrorCode {
	type coded interface{ DomainCode() ErrorCode }
	if c, ok := err.(coded); ok {
		return c.DomainCode()
	}
	return ""
}
