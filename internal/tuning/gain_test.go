// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukavetter/torqline/internal/tuning"
)

/*
TestComputeGain pins the gain arithmetic the widget renders: absolute deltas
plus percentages rounded to two decimals, half away from zero.
*/
func TestComputeGain(t *testing.T) {
	tests := []struct {
		name  string
		stock tuning.Measurement
		tuned tuning.Measurement
		want  tuning.Gain
	}{
		{
			name:  "stage1_ea888",
			stock: tuning.Measurement{Hp: 190, Nm: 320},
			tuned: tuning.Measurement{Hp: 245, Nm: 390},
			want:  tuning.Gain{Hp: 55, Nm: 70, HpPct: 28.95, NmPct: 21.88},
		},
		{
			name:  "no_change",
			stock: tuning.Measurement{Hp: 150, Nm: 250},
			tuned: tuning.Measurement{Hp: 150, Nm: 250},
			want:  tuning.Gain{Hp: 0, Nm: 0, HpPct: 0, NmPct: 0},
		},
		{
			name:  "detuned_stage_goes_negative",
			stock: tuning.Measurement{Hp: 300, Nm: 400},
			tuned: tuning.Measurement{Hp: 250, Nm: 380},
			want:  tuning.Gain{Hp: -50, Nm: -20, HpPct: -16.67, NmPct: -5},
		},
		{
			name:  "exact_two_decimals",
			stock: tuning.Measurement{Hp: 200, Nm: 400},
			tuned: tuning.Measurement{Hp: 250, Nm: 500},
			want:  tuning.Gain{Hp: 50, Nm: 100, HpPct: 25, NmPct: 25},
		},
		{
			name:  "repeating_decimal_rounds",
			stock: tuning.Measurement{Hp: 3, Nm: 3},
			tuned: tuning.Measurement{Hp: 4, Nm: 5},
			want:  tuning.Gain{Hp: 1, Nm: 2, HpPct: 33.33, NmPct: 66.67},
		},
		{
			// Missing baselines must not divide by zero; pct is defined as 0.
			name:  "zero_stock_yields_zero_pct",
			stock: tuning.Measurement{Hp: 0, Nm: 0},
			tuned: tuning.Measurement{Hp: 245, Nm: 390},
			want:  tuning.Gain{Hp: 245, Nm: 390, HpPct: 0, NmPct: 0},
		},
		{
			name:  "zero_stock_nm_only",
			stock: tuning.Measurement{Hp: 190, Nm: 0},
			tuned: tuning.Measurement{Hp: 245, Nm: 390},
			want:  tuning.Gain{Hp: 55, Nm: 390, HpPct: 28.95, NmPct: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tuning.ComputeGain(tt.stock, tt.tuned))
		})
	}
}
