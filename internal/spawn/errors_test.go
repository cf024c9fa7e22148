package spawn

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculationError(t *testing.T) {
	calcErr := &CalculationError{PlayerID: "p1", Err: ErrNoCandidates}
	wrapped := fmt.Errorf("handling request: %w", calcErr)

	var target *CalculationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "p1", target.PlayerID)
	assert.ErrorIs(t, wrapped, ErrNoCandidates)
	assert.Contains(t, calcErr.Error(), `"p1"`)
}
