package core

import "testing"

func TestColorRGB(t *testing.T) {
	tests := []struct {
		c       Color
		r, g, b uint8
	}{
		{"#FF4500", 0xFF, 0x45, 0x00},
		{"#00ffff", 0x00, 0xFF, 0xFF},
		{"#010203", 0x01, 0x02, 0x03},
		{ColorWhite, 0xFF, 0xFF, 0xFF},
	}

	for _, tc := range tests {
		r, g, b, err := tc.c.RGB()
		if err != nil {
			t.Fatalf("Color(%q).RGB() failed: %v", tc.c, err)
		}
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("Color(%q).RGB() = (%d, %d, %d), expected (%d, %d, %d)", tc.c, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestColorValid(t *testing.T) {
	tests := []struct {
		c        Color
		expected bool
	}{
		{"#00FFFF", true},
		{"#abcdef", true},
		{"", false},
		{"00FFFF", false},
		{"#GGGGGG", false},
		{"#FFF", false},
		{"#FF00FF00", false},
	}

	for _, tc := range tests {
		if got := tc.c.Valid(); got != tc.expected {
			t.Errorf("Color(%q).Valid() = %v, expected %v", tc.c, got, tc.expected)
		}
	}
}
