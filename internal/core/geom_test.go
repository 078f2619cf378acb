package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vec2{X: 100, Y: 300}, 40, 40)

	if r.X != 80 || r.Y != 280 {
		t.Errorf("RectAround origin = (%v, %v), expected (80, 280)", r.X, r.Y)
	}
	if r.Right() != 120 || r.Bottom() != 320 {
		t.Errorf("RectAround far edge = (%v, %v), expected (120, 320)", r.Right(), r.Bottom())
	}
	if c := r.Center(); c.X != 100 || c.Y != 300 {
		t.Errorf("Center() = %+v, expected (100, 300)", c)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", Vec2{15, 15}, true},
		{"top-left corner", Vec2{10, 10}, true},
		{"bottom-right edge (exclusive)", Vec2{30, 25}, false},
		{"outside left", Vec2{5, 15}, false},
		{"outside bottom", Vec2{15, 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%+v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	if a.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", a.Len())
	}
	if d := a.Dist(Vec2{}); d != 5 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	sum := a.Add(Vec2{X: 1, Y: -1}).Scale(2)
	if sum.X != 8 || sum.Y != 6 {
		t.Errorf("Add/Scale = %+v, expected (8, 6)", sum)
	}
	if math.Abs(a.Sub(a).Len()) != 0 {
		t.Error("Sub of equal vectors should be zero")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(181, 0, 180) != 180 || ClampF(-1, 0, 180) != 0 || ClampF(90, 0, 180) != 90 {
		t.Error("ClampF should restrict values to [0, 180]")
	}
}
