// Copyright (c) 2026 Torqline. All rights reserved.
// Author: luka.vetter@torqline.dev

package tuning

import "math"

// ComputeGain derives the absolute and percentage power/torque deltas for
// one stage.
//
// Percentages are rounded to two decimal places, half away from zero.
// When a stock value is exactly 0 the percentage is defined as 0: a zero
// stock figure means the baseline is missing, not that the gain is infinite.
// Negative gains (detuned stages) pass through unclamped.
func ComputeGain(stock, tuned Measurement) Gain {
	gainHp := tuned.Hp - stock.Hp
	gainNm := tuned.Nm - stock.Nm

	gain := Gain{Hp: gainHp, Nm: gainNm}

	if stock.Hp > 0 {
		gain.HpPct = round2(float64(gainHp) / float64(stock.Hp) * 100)
	}
	if stock.Nm > 0 {
		gain.NmPct = round2(float64(gainNm) / float64(stock.Nm) * 100)
	}

	return gain
}

// round2 rounds to two decimal places, half away from zero.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
