package srs

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when scheduling parameters are nonsensical.
var ErrInvalidParams = errors.New("invalid srs parameters")

// MinMasteryThreshold is the lowest correct streak that may count as
// Mastered. Configuration can raise the threshold but not lower it.
const MinMasteryThreshold = 5

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// MasteryThreshold is the correct streak at which a word becomes Mastered.
	// Never below MinMasteryThreshold.
	MasteryThreshold int

	// Intervals, in days, after the first and second consecutive correct answers.
	FirstIntervalDays  int
	SecondIntervalDays int

	// GrowthFactor multiplies the previous interval from the third
	// consecutive correct answer on.
	GrowthFactor int

	// IncorrectIntervalDays is the interval after an incorrect answer.
	// 0 makes the word due again immediately.
	IncorrectIntervalDays int

	// MaxIntervalDays caps interval growth so long streaks cannot overflow.
	MaxIntervalDays int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero fields keep their default.
type ParamsConfig struct {
	MasteryThreshold      int
	FirstIntervalDays     int
	SecondIntervalDays    int
	GrowthFactor          int
	IncorrectIntervalDays int
	MaxIntervalDays       int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MasteryThreshold:      MinMasteryThreshold,
		FirstIntervalDays:     1,
		SecondIntervalDays:    3,
		GrowthFactor:          2,
		IncorrectIntervalDays: 0,
		MaxIntervalDays:       36500,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MasteryThreshold > 0 {
		params.MasteryThreshold = config.MasteryThreshold
	}
	if config.FirstIntervalDays > 0 {
		params.FirstIntervalDays = config.FirstIntervalDays
	}
	if config.SecondIntervalDays > 0 {
		params.SecondIntervalDays = config.SecondIntervalDays
	}
	if config.GrowthFactor > 0 {
		params.GrowthFactor = config.GrowthFactor
	}
	if config.IncorrectIntervalDays > 0 {
		params.IncorrectIntervalDays = config.IncorrectIntervalDays
	}
	if config.MaxIntervalDays > 0 {
		params.MaxIntervalDays = config.MaxIntervalDays
	}

	return params
}

// Validate reports parameters that would break the scheduling invariants.
func (p *Params) Validate() error {
	switch {
	case p.MasteryThreshold < MinMasteryThreshold:
		return fmt.Errorf("%w: mastery threshold must be at least %d", ErrInvalidParams, MinMasteryThreshold)
	case p.FirstIntervalDays < 1:
		return fmt.Errorf("%w: first interval must be at least 1 day", ErrInvalidParams)
	case p.SecondIntervalDays < 1:
		return fmt.Errorf("%w: second interval must be at least 1 day", ErrInvalidParams)
	case p.GrowthFactor < 1:
		return fmt.Errorf("%w: growth factor must be at least 1", ErrInvalidParams)
	case p.IncorrectIntervalDays < 0:
		return fmt.Errorf("%w: incorrect interval cannot be negative", ErrInvalidParams)
	case p.MaxIntervalDays < p.SecondIntervalDays || p.MaxIntervalDays < p.FirstIntervalDays:
		return fmt.Errorf("%w: max interval is shorter than the fixed intervals", ErrInvalidParams)
	}
	return nil
}
