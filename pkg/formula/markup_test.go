package formula

import "testing"

func TestBlockSymbol(t *testing.T) {
	if got := BlockSymbol(12); got != "p<sub>12</sub>" {
		t.Errorf("Expected p<sub>12</sub>, got %q", got)
	}
}

func TestSeries(t *testing.T) {
	if got := Series([]string{"a", "b", "c"}); got != "a·b·c" {
		t.Errorf("Expected a·b·c, got %q", got)
	}
	if got := Series([]string{"a"}); got != "a" {
		t.Errorf("Expected a, got %q", got)
	}
}

func TestParallel(t *testing.T) {
	if got := Parallel([]string{"x"}); got != "x" {
		t.Errorf("Single term must pass through, got %q", got)
	}
	want := "[1 − (1 − a)·(1 − b)]"
	if got := Parallel([]string{"a", "b"}); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestChoose(t *testing.T) {
	cases := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{4, 0, 1},
		{4, 4, 1},
		{4, 2, 6},
		{5, 3, 10},
		{4, 5, 0},
		{4, -1, 0},
	}
	for _, tc := range cases {
		if got := Choose(tc.n, tc.k); got != tc.want {
			t.Errorf("Choose(%d,%d) = %v, want %v", tc.n, tc.k, got, tc.want)
		}
	}
}

func TestBernoulliTerm(t *testing.T) {
	cases := []struct {
		n, k int
		want string
	}{
		{3, 3, "C(3,3)·p<sup>3</sup>"},
		{3, 2, "C(3,2)·p<sup>2</sup>·q"},
		{3, 1, "C(3,1)·p·q<sup>2</sup>"},
		{3, 0, "C(3,0)·q<sup>3</sup>"},
	}
	for _, tc := range cases {
		if got := BernoulliTerm(tc.n, tc.k, "p", "q"); got != tc.want {
			t.Errorf("BernoulliTerm(%d,%d) = %q, want %q", tc.n, tc.k, got, tc.want)
		}
	}
}
