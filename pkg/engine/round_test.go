package engine

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.0000001, 1},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRound6(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.1234564, 0.123456},
		{0.1234566, 0.123457},
		{0.9999999, 1},
		{0, 0},
		{1, 1},
	}
	for _, tc := range cases {
		if got := Round6(tc.in); got != tc.want {
			t.Errorf("Round6(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRound6_Idempotent(t *testing.T) {
	values := []float64{0.1, 0.123456789, 0.999999499, 1.0 / 3.0, 0.5000005}
	for _, v := range values {
		once := Round6(v)
		twice := Round6(once)
		if once != twice {
			t.Errorf("Round6 not idempotent for %v: %v != %v", v, once, twice)
		}
	}
}

func TestFormatProb(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.9, "0.9"},
		{0.123456789, "0.123457"},
		{1, "1"},
		{0, "0"},
		{-0.2, "0"},
	}
	for _, tc := range cases {
		if got := FormatProb(tc.in); got != tc.want {
			t.Errorf("FormatProb(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
