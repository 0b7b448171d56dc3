package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotaEnforcer_WithinLimit(t *testing.T) {
	q := NewQuotaEnforcer(10)

	for i := 0; i < 10; i++ {
		assert.NoError(t, q.Check(), "step %d should be allowed", i+1)
	}

	assert.Equal(t, 10, q.Current())
	assert.Equal(t, 10, q.MaxSteps())
}

func TestQuotaEnforcer_ExceedsLimit(t *testing.T) {
	q := NewQuotaEnforcer(5)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Check())
	}

	err := q.Check()
	require.Error(t, err)

	var stepsErr *StepsExceededError
	require.ErrorAs(t, err, &stepsErr)
	assert.Equal(t, 6, stepsErr.Steps)
	assert.Equal(t, 5, stepsErr.Limit)
	assert.Contains(t, err.Error(), "6 steps > 5 limit")
}

func TestQuotaEnforcer_Reset(t *testing.T) {
	q := NewQuotaEnforcer(5)
	for i := 0; i < 5; i++ {
		_ = q.Check()
	}
	assert.Equal(t, 5, q.Current())

	q.Reset()
	assert.Equal(t, 0, q.Current())
	assert.NoError(t, q.Check())
}

func TestIsQuotaError(t *testing.T) {
	err := &StepsExceededError{Steps: 2, Limit: 1}
	assert.True(t, IsQuotaError(err))
	assert.True(t, IsQuotaError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsQuotaError(fmt.Errorf("plain")))
	assert.False(t, IsQuotaError(nil))
}
