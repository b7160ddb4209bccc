package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StatusDistribution counts a user's words per learning status.
// Due is the number of reviewed words whose next revision has passed.
type StatusDistribution struct {
	New      int `json:"new"`
	Revise   int `json:"revise"`
	Forgot   int `json:"forgot"`
	Mastered int `json:"mastered"`
	Due      int `json:"due"`
}

// Total returns the number of words covered by the distribution.
func (d StatusDistribution) Total() int {
	return d.New + d.Revise + d.Forgot + d.Mastered
}

// Set stores count under status. Unknown statuses are ignored.
func (d *StatusDistribution) Set(status LearningStatus, count int) {
	switch status {
	case LearningStatusNew:
		d.New = count
	case LearningStatusRevise:
		d.Revise = count
	case LearningStatusForgot:
		d.Forgot = count
	case LearningStatusMastered:
		d.Mastered = count
	}
}

// DailyCount is a per-day counter. Day is truncated to midnight UTC.
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// DailyAccuracy holds the answers given on one day.
type DailyAccuracy struct {
	Day       time.Time `json:"day"`
	Correct   int       `json:"correct"`
	Incorrect int       `json:"incorrect"`
	Rate      float64   `json:"rate"`
}

// DifficultWord is a word ranked by its current incorrect streak.
type DifficultWord struct {
	WordID         uuid.UUID      `json:"word_id"`
	Text           string         `json:"text"`
	Pinyin         string         `json:"pinyin"`
	Translation    string         `json:"translation"`
	IncorrectCount int            `json:"incorrect_count"`
	LearningStatus LearningStatus `json:"learning_status"`
}

// Streak describes runs of consecutive study days.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ErrEmptySnapshotUserID is returned when a snapshot has no owner.
var ErrEmptySnapshotUserID = errors.New("statistics snapshot user ID cannot be empty")

// StatisticsSnapshot aggregates one user's activity for one day.
// CorrectAnswers and IncorrectAnswers are lifetime-safe totals that
// survive the streak resets of ReviewRecord.
type StatisticsSnapshot struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	SnapshotDate     time.Time `json:"snapshot_date"`
	WordsReviewed    int       `json:"words_reviewed"`
	CorrectAnswers   int       `json:"correct_answers"`
	IncorrectAnswers int       `json:"incorrect_answers"`
	NewWords         int       `json:"new_words"`
	ReviseWords      int       `json:"revise_words"`
	ForgotWords      int       `json:"forgot_words"`
	MasteredWords    int       `json:"mastered_words"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate checks if the snapshot has valid data.
func (s *StatisticsSnapshot) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptySnapshotUserID
	}
	if s.WordsReviewed < 0 || s.CorrectAnswers < 0 || s.IncorrectAnswers < 0 {
		return ErrInvalidCounter
	}
	return nil
}

// Accuracy returns the share of correct answers as a percentage rounded
// to two decimals. A day without answers has accuracy 0.
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	return float64(int64(pct*100+0.5)) / 100
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
