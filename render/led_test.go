package render

import "testing"

func TestLEDBankShow(t *testing.T) {
	tests := []struct {
		left, right uint8
		bits        uint8
	}{
		{0, 0, 0},
		{7, 0, 0b000111},
		{0, 7, 0b111000},
		{5, 2, 0b010101},
		{9, 15, 0b111001}, // only the low three bits are shown
	}

	var b LEDBank
	for _, tt := range tests {
		b.Show(tt.left, tt.right)
		if got := b.Bits(); got != tt.bits {
			t.Errorf("Show(%d,%d) bits = %06b, want %06b", tt.left, tt.right, got, tt.bits)
		}
		l, r := b.Values()
		if l != tt.left&7 || r != tt.right&7 {
			t.Errorf("Values = %d,%d, want %d,%d", l, r, tt.left&7, tt.right&7)
		}
	}
}
