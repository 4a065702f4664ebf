package repository

import "testing"

func TestNewRepositoryNilDB(t *testing.T) {
	if _, err := NewRepository(nil); err == nil {
		t.Error("Expected error for nil DB")
	}
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{12.99, 12.99},
		{12.994999, 12.99},
		{8.99 * 3, 26.97},
		{0.1 + 0.2, 0.30},
	}
	for _, c := range cases {
		if got := roundCents(c.in); got != c.want {
			t.Errorf("roundCents(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}
