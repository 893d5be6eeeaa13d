package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(45, 10, 52, 80)
	if r.Right() != 97 {
		t.Errorf("Right() = %v, expected 97", r.Right())
	}
	if r.Bottom() != 90 {
		t.Errorf("Bottom() = %v, expected 90", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
