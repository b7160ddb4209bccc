package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// ErrMasteryBelowThreshold is returned by CheckRecord when a Mastered record
// has a correct streak shorter than the mastery threshold.
var ErrMasteryBelowThreshold = errors.New("mastered record is below the mastery threshold")

// Service defines the interface for SRS algorithm operations
type Service interface {
	// Process applies one review outcome to the prior state of a word and
	// returns the new state. prior is nil when the word has never been
	// reviewed. Process is total: every input has a defined output.
	Process(
		userID, wordID uuid.UUID,
		prior *domain.ReviewRecord,
		correct bool,
		now time.Time,
	) *domain.ReviewRecord

	// CheckRecord validates a record against the domain invariants and the
	// scheduling parameters of this service.
	CheckRecord(record *domain.ReviewRecord) error

	// Params returns a copy of the parameters in use.
	Params() Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
// Invalid parameters are rejected.
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: params cannot be nil", ErrInvalidParams)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := *params
	return &defaultService{
		params: &p,
	}, nil
}

// Process implements the Service interface
func (s *defaultService) Process(
	userID, wordID uuid.UUID,
	prior *domain.ReviewRecord,
	correct bool,
	now time.Time,
) *domain.ReviewRecord {
	return calculateNextRecord(userID, wordID, prior, correct, now, s.params)
}

// CheckRecord implements the Service interface
func (s *defaultService) CheckRecord(record *domain.ReviewRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if record.LearningStatus == domain.LearningStatusMastered &&
		record.ConsecutiveCorrectCount < s.params.MasteryThreshold {
		return ErrMasteryBelowThreshold
	}
	return nil
}

// Params implements the Service interface
func (s *defaultService) Params() Params {
	return *s.params
}
