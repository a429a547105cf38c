package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestDist(t *testing.T) {
	d := Dist(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        r2.Vec
		ra       float64
		b        r2.Vec
		rb       float64
		expected bool
	}{
		{"same center", r2.Vec{X: 5, Y: 5}, 1, r2.Vec{X: 5, Y: 5}, 1, true},
		{"overlapping", r2.Vec{X: 0, Y: 0}, 10, r2.Vec{X: 15, Y: 0}, 10, true},
		{"touching does not count", r2.Vec{X: 0, Y: 0}, 10, r2.Vec{X: 20, Y: 0}, 10, false},
		{"apart", r2.Vec{X: 0, Y: 0}, 10, r2.Vec{X: 30, Y: 30}, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(-3, -7) != -3 {
		t.Error("Max(-3, -7) should be -3")
	}
}
