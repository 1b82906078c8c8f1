package rating

import (
	"fmt"
	"strconv"
)

// Distribution holds the share of ratings per star value, keyed "1".."5",
// as percentages.
type Distribution map[string]float64

// DistributionRow is one bar of the ratings histogram.
type DistributionRow struct {
	Stars   int
	Percent float64
}

// Rows returns the histogram rows from five stars down to one. Missing
// keys read as zero and percentages are clamped to [0, 100].
func (d Distribution) Rows() []DistributionRow {
	rows := make([]DistributionRow, 0, DefaultStarCount)
	for stars := DefaultStarCount; stars >= 1; stars-- {
		p := d[strconv.Itoa(stars)]
		switch {
		case p != p, p < 0: // NaN or negative
			p = 0
		case p > 100:
			p = 100
		}
		rows = append(rows, DistributionRow{Stars: stars, Percent: p})
	}
	return rows
}

// FormatCount renders a rating count the way store listings do:
// 1234 becomes "1.2K", smaller counts stay as plain integers.
func FormatCount(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return strconv.Itoa(n)
}
