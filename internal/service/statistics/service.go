// Package statistics aggregates review history into the figures shown on
// the progress dashboard and maintains the daily statistics snapshots.
package statistics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
)

// Defaults applied when a request leaves a parameter out.
const (
	DefaultDifficultWordsLimit = 15
	MaxDifficultWordsLimit     = 100
	DefaultRangeMonths         = 6
	snapshotConcurrency        = 4
)

// Service exposes read models over a user's review history.
type Service interface {
	// LearningStatusDistribution counts the user's words per status at now.
	// Words without a record count as New.
	LearningStatusDistribution(ctx context.Context, userID uuid.UUID, now time.Time) (domain.StatusDistribution, error)

	// WordsAddedTimeline returns the number of words created on each day
	// of r. Days without new words are omitted.
	WordsAddedTimeline(ctx context.Context, userID uuid.UUID, r DateRange) ([]domain.DailyCount, error)

	// WordsReviewedTimeline returns the number of distinct words last
	// reviewed on each day of r.
	WordsReviewedTimeline(ctx context.Context, userID uuid.UUID, r DateRange) ([]domain.DailyCount, error)

	// AccuracyTimeline returns the answers given on each day of r that had any.
	AccuracyTimeline(ctx context.Context, userID uuid.UUID, r DateRange) ([]domain.DailyAccuracy, error)

	// TopDifficultWords returns the words with the longest incorrect streaks.
	TopDifficultWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DifficultWord, error)

	// Streak returns the current and longest runs of consecutive study days.
	Streak(ctx context.Context, userID uuid.UUID, today time.Time) (domain.Streak, error)

	// TakeSnapshot stores the user's status distribution for the day of now.
	TakeSnapshot(ctx context.Context, userID uuid.UUID, now time.Time) error

	// TakeDailySnapshots runs TakeSnapshot for every user owning words and
	// returns how many snapshots were stored.
	TakeDailySnapshots(ctx context.Context, now time.Time) (int, error)
}

// RecordReader is the review record storage the service reads from.
type RecordReader interface {
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	StatusCounts(ctx context.Context, userID uuid.UUID) (map[domain.LearningStatus]int, error)
	ReviewedPerDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyCount, error)
	MostIncorrect(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DifficultWord, error)
}

// WordCounter is the word storage the service reads from.
type WordCounter interface {
	CountWithoutRecord(ctx context.Context, userID uuid.UUID) (int, error)
	AddedPerDay(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyCount, error)
}

// SnapshotRepository is the snapshot storage.
type SnapshotRepository interface {
	IncrementAnswers(ctx context.Context, userID uuid.UUID, day time.Time, correct, wordReviewed bool) error
	SaveDistribution(ctx context.Context, userID uuid.UUID, day time.Time, dist domain.StatusDistribution) error
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StatisticsSnapshot, error)
	ActiveDays(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
	UsersWithWords(ctx context.Context) ([]uuid.UUID, error)
}

// DateRange is an inclusive range of UTC days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a range from optional bounds. A missing end defaults
// to the day of now and a missing start to DefaultRangeMonths before the end.
func NewDateRange(from, to *time.Time, now time.Time) (DateRange, error) {
	r := DateRange{To: domain.Day(now)}
	if to != nil {
		r.To = domain.Day(*to)
	}
	r.From = r.To.AddDate(0, -DefaultRangeMonths, 0)
	if from != nil {
		r.From = domain.Day(*from)
	}
	if r.From.After(r.To) {
		return DateRange{}, domain.NewValidationError("start_date", "must not be after end_date", domain.ErrValidation)
	}
	return r, nil
}
