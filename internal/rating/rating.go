// Package rating maps a numeric score onto a fixed row of star states.
//
// The mapping is pure: full stars are the integer part of the (clamped)
// score, and a single half star follows them when the fractional part is at
// least one half. Presentation concerns such as glyphs, colours and spacing
// live with the caller and never influence the computed states.
package rating

import "math"

// DefaultStarCount is the number of stars drawn when the caller does not say.
const DefaultStarCount = 5

// StarState is the visual state of a single star.
type StarState int

const (
	Empty StarState = iota
	Half
	Full
)

// String returns the upper-case state name.
func (s StarState) String() string {
	switch s {
	case Full:
		return "FULL"
	case Half:
		return "HALF"
	default:
		return "EMPTY"
	}
}

// Render returns exactly starCount states ordered left to right.
// NaN is treated as zero and values outside [0, starCount] are clamped.
func Render(rating float64, starCount int) []StarState {
	if starCount <= 0 {
		starCount = DefaultStarCount
	}
	r := clamp(rating, starCount)

	fullStars := int(math.Floor(r))
	hasHalf := r-math.Floor(r) >= 0.5

	states := make([]StarState, starCount)
	for i := 1; i <= starCount; i++ {
		switch {
		case i <= fullStars:
			states[i-1] = Full
		case i == fullStars+1 && hasHalf:
			states[i-1] = Half
		default:
			states[i-1] = Empty
		}
	}
	return states
}

// Quantize returns the score Render actually draws: the clamped rating
// rounded down to the nearest half step.
func Quantize(rating float64, starCount int) float64 {
	if starCount <= 0 {
		starCount = DefaultStarCount
	}
	return math.Floor(clamp(rating, starCount)*2) / 2
}

// Counts tallies a rendered row.
func Counts(states []StarState) (full, half, empty int) {
	for _, s := range states {
		switch s {
		case Full:
			full++
		case Half:
			half++
		default:
			empty++
		}
	}
	return full, half, empty
}

func clamp(rating float64, starCount int) float64 {
	if math.IsNaN(rating) {
		return 0
	}
	return math.Max(0, math.Min(rating, float64(starCount)))
}
