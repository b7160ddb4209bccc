package srs

import (
	"errors"
	"testing"
)

func TestNewDefaultParams(t *testing.T) {
	params := NewDefaultParams()

	if params.MasteryThreshold != 5 {
		t.Errorf("MasteryThreshold should be 5, got %d", params.MasteryThreshold)
	}
	if params.FirstIntervalDays != 1 {
		t.Errorf("FirstIntervalDays should be 1, got %d", params.FirstIntervalDays)
	}
	if params.SecondIntervalDays != 3 {
		t.Errorf("SecondIntervalDays should be 3, got %d", params.SecondIntervalDays)
	}
	if params.GrowthFactor != 2 {
		t.Errorf("GrowthFactor should be 2, got %d", params.GrowthFactor)
	}
	if params.IncorrectIntervalDays != 0 {
		t.Errorf("IncorrectIntervalDays should be 0, got %d", params.IncorrectIntervalDays)
	}
	if err := params.Validate(); err != nil {
		t.Errorf("default params should be valid, got %v", err)
	}
}

func TestNewParams(t *testing.T) {
	t.Run("zero config keeps defaults", func(t *testing.T) {
		params := NewParams(ParamsConfig{})
		if *params != *NewDefaultParams() {
			t.Errorf("expected defaults, got %+v", params)
		}
	})

	t.Run("overrides are applied", func(t *testing.T) {
		params := NewParams(ParamsConfig{
			MasteryThreshold:      7,
			FirstIntervalDays:     2,
			SecondIntervalDays:    4,
			GrowthFactor:          3,
			IncorrectIntervalDays: 1,
			MaxIntervalDays:       365,
		})

		want := Params{
			MasteryThreshold:      7,
			FirstIntervalDays:     2,
			SecondIntervalDays:    4,
			GrowthFactor:          3,
			IncorrectIntervalDays: 1,
			MaxIntervalDays:       365,
		}
		if *params != want {
			t.Errorf("expected %+v, got %+v", want, *params)
		}
	})
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"zero mastery threshold", func(p *Params) { p.MasteryThreshold = 0 }},
		{"mastery threshold below five", func(p *Params) { p.MasteryThreshold = MinMasteryThreshold - 1 }},
		{"zero first interval", func(p *Params) { p.FirstIntervalDays = 0 }},
		{"zero second interval", func(p *Params) { p.SecondIntervalDays = 0 }},
		{"zero growth factor", func(p *Params) { p.GrowthFactor = 0 }},
		{"negative incorrect interval", func(p *Params) { p.IncorrectIntervalDays = -1 }},
		{"max below fixed intervals", func(p *Params) { p.MaxIntervalDays = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := NewDefaultParams()
			tc.mutate(params)

			err := params.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestParamsValidate_AcceptsHigherMasteryThreshold(t *testing.T) {
	params := NewParams(ParamsConfig{MasteryThreshold: 8})
	if err := params.Validate(); err != nil {
		t.Errorf("expected a threshold of 8 to be valid, got %v", err)
	}
}
