package rating

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   []StarState
	}{
		{"zero", 0, []StarState{Empty, Empty, Empty, Empty, Empty}},
		{"five", 5, []StarState{Full, Full, Full, Full, Full}},
		{"two and a half", 2.5, []StarState{Full, Full, Half, Empty, Empty}},
		{"quantized down", 2.7, []StarState{Full, Full, Half, Empty, Empty}},
		{"below half step", 2.4, []StarState{Full, Full, Empty, Empty, Empty}},
		{"half only", 0.5, []StarState{Half, Empty, Empty, Empty, Empty}},
		{"four point nine", 4.9, []StarState{Full, Full, Full, Full, Half}},
		{"negative clamps", -1, []StarState{Empty, Empty, Empty, Empty, Empty}},
		{"above max clamps", 6, []StarState{Full, Full, Full, Full, Full}},
		{"NaN", math.NaN(), []StarState{Empty, Empty, Empty, Empty, Empty}},
		{"positive infinity", math.Inf(1), []StarState{Full, Full, Full, Full, Full}},
		{"negative infinity", math.Inf(-1), []StarState{Empty, Empty, Empty, Empty, Empty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.rating, DefaultStarCount)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Render(%v) mismatch (-want +got):\n%s", tt.rating, diff)
			}
		})
	}
}

func TestRender_StarCount(t *testing.T) {
	assert.Len(t, Render(3, 0), DefaultStarCount, "non-positive count falls back to default")
	assert.Equal(t, []StarState{Full, Full, Full, Half, Empty, Empty, Empty, Empty, Empty, Empty}, Render(3.5, 10))
	assert.Equal(t, []StarState{Full, Full, Full}, Render(4, 3), "clamped to the star count")
}

func TestRender_Properties(t *testing.T) {
	for r := 0.0; r <= 5.0; r += 0.05 {
		states := Render(r, DefaultStarCount)
		if len(states) != DefaultStarCount {
			t.Fatalf("Render(%v) returned %d states", r, len(states))
		}

		full, half, _ := Counts(states)
		if full != int(math.Floor(r)) {
			t.Errorf("Render(%v): %d full stars, want %d", r, full, int(math.Floor(r)))
		}
		wantHalf := 0
		if math.Mod(r, 1) >= 0.5 {
			wantHalf = 1
		}
		if half != wantHalf {
			t.Errorf("Render(%v): %d half stars, want %d", r, half, wantHalf)
		}

		// Full run, then at most one half, then empties.
		seenNonFull := false
		for i, s := range states {
			if s == Full && seenNonFull {
				t.Errorf("Render(%v): full star at %d after a gap", r, i)
			}
			if s == Half && i > 0 && states[i-1] != Full {
				t.Errorf("Render(%v): half star at %d not preceded by a full star", r, i)
			}
			if s != Full {
				seenNonFull = true
			}
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	for _, r := range []float64{0, 1.5, 3.2, 4.5, 5} {
		assert.Equal(t, Render(r, DefaultStarCount), Render(r, DefaultStarCount))
	}
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 2.5, Quantize(2.7, 5))
	assert.Equal(t, 2.0, Quantize(2.49, 5))
	assert.Equal(t, 0.0, Quantize(-3, 5))
	assert.Equal(t, 5.0, Quantize(9, 5))
	assert.Equal(t, 0.0, Quantize(math.NaN(), 0))
}

func TestStarStateString(t *testing.T) {
	assert.Equal(t, "FULL", Full.String())
	assert.Equal(t, "HALF", Half.String())
	assert.Equal(t, "EMPTY", Empty.String())
}
