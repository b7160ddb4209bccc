package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LearningStatus is the learner-facing classification of a word.
type LearningStatus string

// The complete set of learning statuses. A word that has never been
// reviewed is New; stored review records never carry New.
const (
	LearningStatusNew      LearningStatus = "New"
	LearningStatusRevise   LearningStatus = "Revise"
	LearningStatusForgot   LearningStatus = "Forgot"
	LearningStatusMastered LearningStatus = "Mastered"
)

// LearningStatuses lists every status in display order.
var LearningStatuses = []LearningStatus{
	LearningStatusNew,
	LearningStatusRevise,
	LearningStatusForgot,
	LearningStatusMastered,
}

// ParseLearningStatus converts a string into a LearningStatus.
func ParseLearningStatus(s string) (LearningStatus, error) {
	status := LearningStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLearningStatus, s)
	}
	return status, nil
}

// Valid reports whether s is one of the known statuses.
func (s LearningStatus) Valid() bool {
	switch s {
	case LearningStatusNew, LearningStatusRevise, LearningStatusForgot, LearningStatusMastered:
		return true
	}
	return false
}

func (s LearningStatus) String() string {
	return string(s)
}

// MarshalText rejects statuses outside the known set, including the zero
// value, so encoding fails the same way decoding does.
func (s LearningStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLearningStatus, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText rejects unknown statuses.
func (s *LearningStatus) UnmarshalText(text []byte) error {
	status, err := ParseLearningStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Common validation errors for ReviewRecord
var (
	ErrEmptyRecordUserID       = errors.New("review record user ID cannot be empty")
	ErrEmptyRecordWordID       = errors.New("review record word ID cannot be empty")
	ErrInvalidInterval         = errors.New("revision interval must be greater than or equal to 0")
	ErrInvalidCounter          = errors.New("review counters must be greater than or equal to 0")
	ErrInconsistentSchedule    = errors.New("next revision must equal last revision plus interval")
	ErrInconsistentStreaks     = errors.New("correct and incorrect streaks cannot both be positive")
	ErrInconsistentStatus      = errors.New("learning status does not match review counters")
	ErrStoredStatusCannotBeNew = errors.New("a stored review record cannot have status New")
)

// ReviewRecord is the per (user, word) spaced-repetition state.
// TotalIncorrectCount is the current incorrect streak; it resets on
// every correct answer.
type ReviewRecord struct {
	UserID                  uuid.UUID      `json:"user_id"`
	WordID                  uuid.UUID      `json:"word_id"`
	RevisionIntervalDays    int            `json:"revision_interval_days"`
	ConsecutiveCorrectCount int            `json:"consecutive_correct_count"`
	TotalIncorrectCount     int            `json:"total_incorrect_count"`
	LearningStatus          LearningStatus `json:"learning_status"`
	LastRevisionAt          time.Time      `json:"last_revision_at"`
	NextRevisionAt          time.Time      `json:"next_revision_at"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// Validate checks the structural invariants of a stored record.
// The mastery threshold is a scheduling parameter and is checked by the srs package.
func (r *ReviewRecord) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrEmptyRecordUserID
	}

	if r.WordID == uuid.Nil {
		return ErrEmptyRecordWordID
	}

	if r.RevisionIntervalDays < 0 {
		return ErrInvalidInterval
	}

	if r.ConsecutiveCorrectCount < 0 || r.TotalIncorrectCount < 0 {
		return ErrInvalidCounter
	}

	if r.ConsecutiveCorrectCount > 0 && r.TotalIncorrectCount > 0 {
		return ErrInconsistentStreaks
	}

	if !r.NextRevisionAt.Equal(r.LastRevisionAt.AddDate(0, 0, r.RevisionIntervalDays)) {
		return ErrInconsistentSchedule
	}

	switch r.LearningStatus {
	case LearningStatusNew:
		return ErrStoredStatusCannotBeNew
	case LearningStatusForgot:
		if r.ConsecutiveCorrectCount != 0 || r.TotalIncorrectCount == 0 {
			return ErrInconsistentStatus
		}
	case LearningStatusRevise, LearningStatusMastered:
		if r.ConsecutiveCorrectCount == 0 {
			return ErrInconsistentStatus
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLearningStatus, r.LearningStatus)
	}

	return nil
}

// IsDue reports whether the word should be reviewed at now.
func (r *ReviewRecord) IsDue(now time.Time) bool {
	return !r.NextRevisionAt.After(now)
}

// StatusOf returns the learning status for a possibly absent record.
func StatusOf(r *ReviewRecord) LearningStatus {
	if r == nil {
		return LearningStatusNew
	}
	return r.LearningStatus
}
