package fitcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercentage(t *testing.T) {
	cases := []struct {
		name                 string
		start, current, goal float64
		want                 float64
	}{
		{"halfway losing", 175, 165, 155, 50},
		{"degenerate goal equals start", 100, 100, 100, 0},
		{"goal equals start, weight moved", 100, 90, 100, 0},
		{"halfway gaining", 60, 65, 70, 50},
		{"not started", 175, 175, 155, 0},
		{"reached", 175, 155, 155, 100},
		{"regressed past start clamps to 0", 175, 180, 155, 0},
		{"gain goal, lost weight clamps to 0", 60, 58, 70, 0},
		{"overshot clamps to 100", 175, 150, 155, 100},
		{"NaN input", math.NaN(), 150, 155, 0},
		{"infinite input", 175, math.Inf(-1), 155, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ProgressPercentage(tc.start, tc.current, tc.goal), 1e-9)
		})
	}
}

func TestWeightProgress_Percentage(t *testing.T) {
	p := WeightProgress{StartWeight: 90, CurrentWeight: 84, GoalWeight: 80}
	assert.InDelta(t, 60, p.Percentage(), 1e-9)
}
