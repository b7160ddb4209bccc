package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DamVador/Hanyu-VocabTracker/internal/domain"
	"github.com/DamVador/Hanyu-VocabTracker/internal/service/review"
	"github.com/DamVador/Hanyu-VocabTracker/internal/store"
)

// SubmittedAnswer is one recorded call of MockReviewService.SubmitAnswer.
type SubmittedAnswer struct {
	UserID  uuid.UUID
	WordID  uuid.UUID
	Correct bool
	Now     time.Time
}

// MockReviewService implements review.Service for testing.
type MockReviewService struct {
	SubmitAnswerFn func(ctx context.Context, userID, wordID uuid.UUID, correct bool, now time.Time) (*domain.ReviewRecord, error)
	GetRecordFn    func(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error)
	ListDueFn      func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]store.DueWord, error)

	Record *domain.ReviewRecord
	Due    []store.DueWord
	Err    error

	mu        sync.Mutex
	submitted []SubmittedAnswer
	limits    []int
}

var _ review.Service = (*MockReviewService)(nil)

// SubmitAnswer implements review.Service.
func (m *MockReviewService) SubmitAnswer(
	ctx context.Context,
	userID, wordID uuid.UUID,
	correct bool,
	now time.Time,
) (*domain.ReviewRecord, error) {
	m.mu.Lock()
	m.submitted = append(m.submitted, SubmittedAnswer{UserID: userID, WordID: wordID, Correct: correct, Now: now})
	m.mu.Unlock()

	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, userID, wordID, correct, now)
	}
	return m.Record, m.Err
}

// GetRecord implements review.Service.
func (m *MockReviewService) GetRecord(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewRecord, error) {
	if m.GetRecordFn != nil {
		return m.GetRecordFn(ctx, userID, wordID)
	}
	return m.Record, m.Err
}

// ListDue implements review.Service.
func (m *MockReviewService) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	limit int,
) ([]store.DueWord, error) {
	m.mu.Lock()
	m.limits = append(m.limits, limit)
	m.mu.Unlock()

	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, userID, now, limit)
	}
	return m.Due, m.Err
}

// Submitted returns the SubmitAnswer calls seen so far.
func (m *MockReviewService) Submitted() []SubmittedAnswer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SubmittedAnswer(nil), m.submitted...)
}

// DueLimits returns the limits passed to ListDue so far.
func (m *MockReviewService) DueLimits() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.limits...)
}

// MockOption configures a MockReviewService.
type MockOption func(*MockReviewService)

// WithRecord sets the record returned by SubmitAnswer and GetRecord.
func WithRecord(record *domain.ReviewRecord) MockOption {
	return func(m *MockReviewService) { m.Record = record }
}

// WithDue sets the words returned by ListDue.
func WithDue(due []store.DueWord) MockOption {
	return func(m *MockReviewService) { m.Due = due }
}

// WithError sets the error returned by every method.
func WithError(err error) MockOption {
	return func(m *MockReviewService) { m.Err = err }
}

// NewMockReviewService creates a MockReviewService with the given options.
func NewMockReviewService(opts ...MockOption) *MockReviewService {
	m := &MockReviewService{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
