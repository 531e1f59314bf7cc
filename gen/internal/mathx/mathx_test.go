package mathx

import "testing"

func TestFloorDivMod(t *testing.T) {
	cases := []struct{ a, b, div, mod int }{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{-8, 4, -2, 0},
		{0, 4, 0, 0},
		{-1, 16, -1, 15},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.div {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.div)
		}
		if got := FloorMod(c.a, c.b); got != c.mod {
			t.Fatalf("FloorMod(%d, %d) = %d, want %d", c.a, c.b, got, c.mod)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("unexpected clamp result")
	}
}
