package input

import (
	"testing"

	"github.com/lixenwraith/vi-pong/constants"
)

func TestRowForPotRange(t *testing.T) {
	tests := []struct {
		pot  int
		want int
	}{
		{constants.PotMax, 10},
		{PotReadMax, 10}, // clamped
		{constants.PotMin, 177},
		{0, 177}, // clamped
		{2062, 93},
		{3990, 11},
		{130, 176},
	}
	for _, tt := range tests {
		if got := RowForPot(tt.pot); got != tt.want {
			t.Errorf("RowForPot(%d) = %d, want %d", tt.pot, got, tt.want)
		}
	}
}

func TestRowForPotMonotone(t *testing.T) {
	prev := RowForPot(0)
	for pot := 1; pot <= PotReadMax; pot++ {
		row := RowForPot(pot)
		if row > prev {
			t.Fatalf("RowForPot(%d) = %d above RowForPot(%d) = %d", pot, row, pot-1, prev)
		}
		if row < constants.CourtMinY || row+constants.PaddleWidth > constants.CourtMaxY {
			t.Fatalf("RowForPot(%d) = %d puts the paddle off the court", pot, row)
		}
		prev = row
	}
}

func TestPotForRowRoundTrip(t *testing.T) {
	for row := minRow; row <= maxRow; row++ {
		if got := RowForPot(PotForRow(row)); got != row {
			t.Fatalf("RowForPot(PotForRow(%d)) = %d", row, got)
		}
	}
}

func TestPotMapperHysteresis(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		pot     int
		want    int
	}{
		{"noise below row", 2062, 2055, 93},
		{"noise above row", 2062, 2095, 93},
		{"leaves band below", 2062, 2050, 94},
		{"leaves band above", 2062, 2096, 92},
		{"large move not damped", 2062, 2000, 96},
		{"rests on low border", 4000, 3995, 10},
		{"leaves low border", 4000, 3985, 11},
		{"enters low border", 3990, 4000, 10},
		{"enters high border", 130, 100, 177},
		{"leaves high border", 100, 140, 176},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPotMapper(tt.initial)
			if got := m.Map(tt.pot); got != tt.want {
				t.Errorf("Map(%d) from %d = %d, want %d", tt.pot, tt.initial, got, tt.want)
			}
			if m.Row() != tt.want {
				t.Errorf("Row() = %d, want %d", m.Row(), tt.want)
			}
		})
	}
}

func TestPotMapperHoldsUnderJitter(t *testing.T) {
	m := NewPotMapper(2070)
	start := m.Row()
	for i := 0; i < 100; i++ {
		pot := 2062 + (i%2)*8 - 4 // 2058 and 2066, straddling the row edge
		if got := m.Map(pot); got != start {
			t.Fatalf("jitter moved the paddle to %d at step %d", got, i)
		}
	}
}
