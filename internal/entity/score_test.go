package entity

import "testing"

func float64ptr(v float64) *float64 { return &v }

func TestEstimateScoreAmountWithUnit(t *testing.T) {
	unit := &Unit{ID: "u1", Name: "page", ActivityID: ActivityReading, Modifier: 0.05}
	got, ok := EstimateScore(float64ptr(40), unit, nil, nil)
	if !ok {
		t.Fatal("expected an estimate")
	}
	if got != 2 {
		t.Fatalf("expected score 2, got %v", got)
	}
}

func TestEstimateScoreDurationFallback(t *testing.T) {
	got, ok := EstimateScore(nil, nil, float64ptr(30), float64ptr(0.5))
	if !ok {
		t.Fatal("expected an estimate from duration")
	}
	if got != 15 {
		t.Fatalf("expected score 15, got %v", got)
	}
}

func TestEstimateScoreInsufficientInputs(t *testing.T) {
	unit := &Unit{ID: "u1", Modifier: 1}
	cases := []struct {
		name     string
		amount   *float64
		unit     *Unit
		duration *float64
		modifier *float64
	}{
		{name: "nothing"},
		{name: "amount without unit", amount: float64ptr(10)},
		{name: "unit without amount", unit: unit},
		{name: "zero amount", amount: float64ptr(0), unit: unit},
		{name: "duration without modifier", duration: float64ptr(30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := EstimateScore(tc.amount, tc.unit, tc.duration, tc.modifier); ok {
				t.Fatal("expected no estimate")
			}
		})
	}
}

func TestEstimateScoreMonotonicInAmount(t *testing.T) {
	unit := &Unit{ID: "u1", Modifier: 0.3}
	previous := 0.0
	for amount := 1.0; amount <= 50; amount++ {
		score, ok := EstimateScore(&amount, unit, nil, nil)
		if !ok {
			t.Fatalf("expected an estimate for amount %v", amount)
		}
		if score <= previous {
			t.Fatalf("score not strictly increasing at amount %v: %v <= %v", amount, score, previous)
		}
		previous = score
	}
}
