package spawn

import "fmt"

// CalculationError is the only error kind the allocator surfaces: something
// unexpected went wrong while generating, scoring or selecting a candidate.
// Degraded lookups (friends, density, reservation) never produce one.
type CalculationError struct {
	PlayerID string
	Err      error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculating spawn location for player %q: %v", e.PlayerID, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}
