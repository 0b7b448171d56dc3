package engine

import (
	"errors"
	"fmt"
)

// QuotaEnforcer counts steps and enforces a maximum.
//
// Every tile turns from sand to water at most once, so a correct run drains
// in a number of steps proportional to the tile count. The quota turns a
// defect that would loop forever into an error.
type QuotaEnforcer struct {
	maxSteps int
	current  int
}

// NewQuotaEnforcer creates a new quota enforcer with the given limit.
func NewQuotaEnforcer(maxSteps int) *QuotaEnforcer {
	return &QuotaEnforcer{maxSteps: maxSteps}
}

// Check increments the step counter and validates against the limit.
// Returns *StepsExceededError once the limit is passed.
func (q *QuotaEnforcer) Check() error {
	q.current++
	if q.current > q.maxSteps {
		return &StepsExceededError{
			Steps: q.current,
			Limit: q.maxSteps,
		}
	}
	return nil
}

// Reset resets the step counter to 0.
func (q *QuotaEnforcer) Reset() {
	q.current = 0
}

// Current returns the current step count.
func (q *QuotaEnforcer) Current() int {
	return q.current
}

// MaxSteps returns the maximum steps limit.
func (q *QuotaEnforcer) MaxSteps() int {
	return q.maxSteps
}

// StepsExceededError is returned when a run exceeds the step quota.
type StepsExceededError struct {
	Steps int // Number of steps taken
	Limit int // Maximum allowed steps
}

// Error implements the error interface.
func (e *StepsExceededError) Error() string {
	return fmt.Sprintf("simulation exceeded max steps quota: %d steps > %d limit", e.Steps, e.Limit)
}

// IsQuotaError returns true if err is or wraps a *StepsExceededError.
func IsQuotaError(err error) bool {
	var se *StepsExceededError
	return errors.As(err, &se)
}
