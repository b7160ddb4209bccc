package srs

import (
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// calculateNewInterval determines the next revision interval in days.
//
// Parameters:
//   - prevInterval: The interval of the prior record (0 for a word never reviewed)
//   - consecutive: The correct streak after applying the current outcome
//   - correct: Whether the current answer was correct
//   - params: Configuration parameters for the SRS algorithm
//
// Algorithm behavior:
//   - Incorrect answers use params.IncorrectIntervalDays (0 by default: due immediately)
//   - The first correct answer in a streak uses params.FirstIntervalDays (1)
//   - The second uses params.SecondIntervalDays (3)
//   - From the third on, the previous interval is multiplied by params.GrowthFactor (2).
//     A previous interval of 0 would stay 0 forever, so the result is raised to 1.
//   - Growth never exceeds params.MaxIntervalDays
func calculateNewInterval(prevInterval, consecutive int, correct bool, params *Params) int {
	if !correct {
		return params.IncorrectIntervalDays
	}

	switch consecutive {
	case 1:
		return params.FirstIntervalDays
	case 2:
		return params.SecondIntervalDays
	}

	if prevInterval > params.MaxIntervalDays/params.GrowthFactor {
		return params.MaxIntervalDays
	}

	interval := prevInterval * params.GrowthFactor
	if interval < 1 {
		interval = 1
	}
	return interval
}

// calculateStatus classifies a word after an outcome has been applied.
func calculateStatus(consecutive int, correct bool, params *Params) domain.LearningStatus {
	if !correct {
		return domain.LearningStatusForgot
	}
	if consecutive >= params.MasteryThreshold {
		return domain.LearningStatusMastered
	}
	return domain.LearningStatusRevise
}

// calculateNextRecord builds the record that results from applying one
// outcome to prior. prior may be nil for a word that has never been
// reviewed, in which case all counters start at zero.
//
// The returned record is always a new value; prior is never modified.
// Identity and CreatedAt are carried over from prior when present.
func calculateNextRecord(
	userID, wordID uuid.UUID,
	prior *domain.ReviewRecord,
	correct bool,
	now time.Time,
	params *Params,
) *domain.ReviewRecord {
	now = now.UTC()

	var prevInterval, prevConsecutive, prevIncorrect int
	createdAt := now
	if prior != nil {
		prevInterval = prior.RevisionIntervalDays
		prevConsecutive = prior.ConsecutiveCorrectCount
		prevIncorrect = prior.TotalIncorrectCount
		if !prior.CreatedAt.IsZero() {
			createdAt = prior.CreatedAt
		}
	}

	consecutive, incorrect := 0, prevIncorrect+1
	if correct {
		consecutive, incorrect = prevConsecutive+1, 0
	}

	interval := calculateNewInterval(prevInterval, consecutive, correct, params)

	return &domain.ReviewRecord{
		UserID:                  userID,
		WordID:                  wordID,
		RevisionIntervalDays:    interval,
		ConsecutiveCorrectCount: consecutive,
		TotalIncorrectCount:     incorrect,
		LearningStatus:          calculateStatus(consecutive, correct, params),
		LastRevisionAt:          now,
		NextRevisionAt:          now.AddDate(0, 0, interval),
		CreatedAt:               createdAt,
		UpdatedAt:               now,
	}
}
