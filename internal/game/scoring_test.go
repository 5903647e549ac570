package game

import "testing"

func TestLengthMultiplierBreakpoints(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{12, 3},
		{13, 4},
		{15, 4},
		{16, 5},
		{19, 5},
		{20, 6},
		{40, 6},
	}

	for _, tc := range cases {
		if got := LengthMultiplier(tc.length); got != tc.want {
			t.Errorf("LengthMultiplier(%d) = %d; want %d", tc.length, got, tc.want)
		}
	}
}

func TestComputeMultiplierMonotonic(t *testing.T) {
	for _, base := range []int{1, 2, 3} {
		prev := 0
		for length := 1; length <= 30; length++ {
			got := ComputeMultiplier(base, length)
			if got < prev {
				t.Fatalf("ComputeMultiplier(%d, %d) = %d decreased from %d", base, length, got, prev)
			}
			if want := base * LengthMultiplier(length); got != want {
				t.Fatalf("ComputeMultiplier(%d, %d) = %d; want %d", base, length, got, want)
			}
			prev = got
		}
	}
}

func TestScoreAccumulation(t *testing.T) {
	// After N successful rounds the score equals the sum of the per-round
	// increments base*lengthMultiplier(L) for L = 1..N.
	for _, base := range []int{1, 2, 3} {
		score := 0
		want := 0
		for length := 1; length <= 25; length++ {
			m := ComputeMultiplier(base, length)
			score = ComputeRoundScore(score, m)
			want += base * LengthMultiplier(length)
			if score != want {
				t.Fatalf("base=%d: score after round %d = %d; want %d", base, length, score, want)
			}
		}
	}
}

func TestComputeRoundScoreAddsMultiplier(t *testing.T) {
	cases := []struct {
		current, multiplier, want int
	}{
		{0, 1, 1},
		{5, 2, 7},
		{6, 18, 24},
	}

	for _, tc := range cases {
		if got := ComputeRoundScore(tc.current, tc.multiplier); got != tc.want {
			t.Errorf("ComputeRoundScore(%d, %d) = %d; want %d", tc.current, tc.multiplier, got, tc.want)
		}
	}
}
