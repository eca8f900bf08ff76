package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"same lane overlap", NewRectF(100, 250, 40, 20), NewRectF(120, 250, 40, 20), true},
		{"touching edges", NewRectF(100, 250, 40, 20), NewRectF(140, 250, 40, 20), false},
		{"fractional overlap", NewRectF(100, 250, 40, 20), NewRectF(139.5, 250, 40, 20), true},
		{"different lanes", NewRectF(100, 100, 40, 20), NewRectF(100, 250, 40, 20), false},
		{"vertical near miss", NewRectF(0, 0, 40, 20), NewRectF(0, 20, 40, 20), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(-2.5) != 2.5 {
		t.Error("AbsF(-2.5) should be 2.5")
	}
	if AbsF(2.5) != 2.5 {
		t.Error("AbsF(2.5) should be 2.5")
	}
}
