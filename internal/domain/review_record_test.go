package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validRecord() ReviewRecord {
	last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return ReviewRecord{
		UserID:                  uuid.New(),
		WordID:                  uuid.New(),
		RevisionIntervalDays:    3,
		ConsecutiveCorrectCount: 2,
		TotalIncorrectCount:     0,
		LearningStatus:          LearningStatusRevise,
		LastRevisionAt:          last,
		NextRevisionAt:          last.AddDate(0, 0, 3),
	}
}

func TestReviewRecordValidate(t *testing.T) {
	valid := validRecord()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected valid record, got error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(r *ReviewRecord)
		wantErr error
	}{
		{"empty user", func(r *ReviewRecord) { r.UserID = uuid.Nil }, ErrEmptyRecordUserID},
		{"empty word", func(r *ReviewRecord) { r.WordID = uuid.Nil }, ErrEmptyRecordWordID},
		{"negative interval", func(r *ReviewRecord) { r.RevisionIntervalDays = -1 }, ErrInvalidInterval},
		{"negative counter", func(r *ReviewRecord) { r.TotalIncorrectCount = -1 }, ErrInvalidCounter},
		{"both streaks", func(r *ReviewRecord) { r.TotalIncorrectCount = 1 }, ErrInconsistentStreaks},
		{"schedule drift", func(r *ReviewRecord) { r.NextRevisionAt = r.NextRevisionAt.Add(time.Hour) }, ErrInconsistentSchedule},
		{"stored as new", func(r *ReviewRecord) { r.LearningStatus = LearningStatusNew }, ErrStoredStatusCannotBeNew},
		{"forgot with streak", func(r *ReviewRecord) { r.LearningStatus = LearningStatusForgot }, ErrInconsistentStatus},
		{"unknown status", func(r *ReviewRecord) { r.LearningStatus = "Learning" }, ErrInvalidLearningStatus},
		{
			"revise without streak",
			func(r *ReviewRecord) {
				r.ConsecutiveCorrectCount = 0
			},
			ErrInconsistentStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validRecord()
			tc.mutate(&r)
			if err := r.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestReviewRecordIsDue(t *testing.T) {
	r := validRecord()

	if r.IsDue(r.NextRevisionAt.Add(-time.Second)) {
		t.Error("Expected record not to be due before next revision")
	}
	if !r.IsDue(r.NextRevisionAt) {
		t.Error("Expected record to be due at next revision")
	}
	if !r.IsDue(r.NextRevisionAt.Add(time.Hour)) {
		t.Error("Expected record to be due after next revision")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != LearningStatusNew {
		t.Errorf("Expected New for absent record, got %s", got)
	}

	r := validRecord()
	if got := StatusOf(&r); got != LearningStatusRevise {
		t.Errorf("Expected Revise, got %s", got)
	}
}

func TestParseLearningStatus(t *testing.T) {
	for _, status := range LearningStatuses {
		got, err := ParseLearningStatus(status.String())
		if err != nil || got != status {
			t.Errorf("ParseLearningStatus(%q) = %q, %v", status, got, err)
		}
	}

	if _, err := ParseLearningStatus("revise"); !errors.Is(err, ErrInvalidLearningStatus) {
		t.Errorf("Expected ErrInvalidLearningStatus for lowercase input, got %v", err)
	}
}

func TestLearningStatusJSON(t *testing.T) {
	var payload struct {
		Status LearningStatus `json:"status"`
	}

	if err := json.Unmarshal([]byte(`{"status":"Mastered"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Status != LearningStatusMastered {
		t.Errorf("Expected Mastered, got %s", payload.Status)
	}

	if err := json.Unmarshal([]byte(`{"status":"Expert"}`), &payload); err == nil {
		t.Error("Expected an error for an unknown status")
	}
}

func TestLearningStatusMarshalText(t *testing.T) {
	for _, status := range LearningStatuses {
		data, err := json.Marshal(DifficultWord{LearningStatus: status})
		if err != nil {
			t.Fatalf("marshal %s: %v", status, err)
		}
		var decoded DifficultWord
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %s: %v", status, err)
		}
		if decoded.LearningStatus != status {
			t.Errorf("Expected %s after round trip, got %s", status, decoded.LearningStatus)
		}
	}

	for _, status := range []LearningStatus{"", "Expert"} {
		if _, err := json.Marshal(DifficultWord{LearningStatus: status}); !errors.Is(err, ErrInvalidLearningStatus) {
			t.Errorf("Expected ErrInvalidLearningStatus when marshalling %q, got %v", status, err)
		}
	}
}
