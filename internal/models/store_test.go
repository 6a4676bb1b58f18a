package models

import "testing"

// The cap applies no matter what limit a caller asks for.
func TestClampLimit(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 100},
		{-1, 100},
		{1, 1},
		{99, 99},
		{100, 100},
		{101, 100},
		{1 << 20, 100},
	}

	for _, tc := range cases {
		if got := clampLimit(tc.in); got != tc.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
