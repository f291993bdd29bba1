package input

import (
	"math"

	"github.com/lixenwraith/vi-pong/constants"
)

// PotReadMax is the largest raw reading of the 12-bit converter
const PotReadMax = 4095

const (
	minRow   = constants.CourtMinY
	rowRange = constants.PaddleRowRange
	maxRow   = minRow + rowRange
	potRange = constants.PotMax - constants.PotMin
)

// RowForPot maps a reading to the paddle's bottom-left row without hysteresis
// PotMax maps to the first court row, PotMin to the last paddle row
func RowForPot(pot int) int {
	pot = clampPot(pot)
	// ceil((PotMax-pot)*range/potRange), numerator never negative after clamping
	n := (constants.PotMax - pot) * rowRange
	return minRow + (n+potRange-1)/potRange
}

// PotForRow returns a reading that maps to row
func PotForRow(row int) int {
	if row < minRow {
		row = minRow
	}
	if row > maxRow {
		row = maxRow
	}
	return constants.PotMax - (row-minRow)*potRange/rowRange
}

func clampPot(pot int) int {
	if pot > constants.PotMax {
		return constants.PotMax
	}
	if pot < constants.PotMin {
		return constants.PotMin
	}
	return pot
}

// PotMapper converts readings to rows with hysteresis against converter noise
// A one-row change is suppressed while the reading stays within the hysteresis band
// around the current row's reading interval
type PotMapper struct {
	hysteresis float64
	row        int
}

// NewPotMapper creates a mapper positioned at the row of the initial reading
func NewPotMapper(initial int) *PotMapper {
	return &PotMapper{
		hysteresis: constants.PotHysteresis,
		row:        RowForPot(initial),
	}
}

// Row returns the last mapped row
func (m *PotMapper) Row() int {
	return m.row
}

// Map returns the row for pot and remembers it
func (m *PotMapper) Map(pot int) int {
	pot = clampPot(pot)
	row := RowForPot(pot)
	old := m.row

	if d := row - old; d == 1 || d == -1 {
		p := float64(pot)
		switch {
		case old == maxRow && pot < constants.PotMin+constants.PotHysteresis,
			old == minRow && pot > constants.PotMax-constants.PotHysteresis:
			// Resting against a border
			row = old
		case old == maxRow-1 && pot <= constants.PotMin,
			old == minRow+1 && pot >= constants.PotMax:
			// Entering a border is never damped
		default:
			lo, hi := rowInterval(old)
			if p > math.Floor(lo-m.hysteresis) && p < math.Ceil(hi+m.hysteresis) {
				row = old
			}
		}
	}

	m.row = row
	return row
}

// rowInterval returns the readings [lo, hi) that map to row
func rowInterval(row int) (lo, hi float64) {
	step := float64(potRange) / float64(rowRange)
	lo = float64(constants.PotMax) - step*float64(row-minRow)
	return lo, lo + step
}
