package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1234, "1.2K"},
		{15780, "15.8K"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.n), "FormatCount(%d)", tt.n)
	}
}

func TestDistributionRows(t *testing.T) {
	d := Distribution{"5": 70, "4": 20, "2": -4, "1": 140}

	rows := d.Rows()
	assert.Equal(t, []DistributionRow{
		{Stars: 5, Percent: 70},
		{Stars: 4, Percent: 20},
		{Stars: 3, Percent: 0},
		{Stars: 2, Percent: 0},
		{Stars: 1, Percent: 100},
	}, rows)
}

func TestDistributionRows_Nil(t *testing.T) {
	var d Distribution
	rows := d.Rows()
	assert.Len(t, rows, 5)
	for _, r := range rows {
		assert.Zero(t, r.Percent)
	}
}
