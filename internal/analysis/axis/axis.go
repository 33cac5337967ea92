package axis

import (
	"math"

	"weightlog/internal/domain"
)

// Observed returns the lowest and highest finite weights among entries.
// ok is false when no entry has a usable weight.
func Observed(entries []domain.Entry) (lowest, highest float64, ok bool) {
	lowest, highest = math.Inf(1), math.Inf(-1)
	for _, e := range entries {
		v, valid := e.Weight.Float()
		if !valid {
			continue
		}
		ok = true
		lowest = math.Min(lowest, v)
		highest = math.Max(highest, v)
	}
	if !ok {
		return 0, 0, false
	}
	return lowest, highest, true
}

// YBounds computes the weight chart's y-axis limits.
func YBounds(entries []domain.Entry, startWeight, targetWeight domain.Weight) domain.Bounds {
	lowest, highest, observed := Observed(entries)
	var b domain.Bounds

	if start, ok := startWeight.Float(); ok {
		b.Max, b.HasMax = start, true
	} else if observed {
		b.Max, b.HasMax = highest, true
	}

	target, hasTarget := targetWeight.Float()
	switch {
	case hasTarget && observed:
		b.Min, b.HasMin = math.Min(lowest, target), true
	case hasTarget:
		b.Min, b.HasMin = target, true
	case observed:
		b.Min, b.HasMin = lowest, true
	}

	if b.HasMin && b.HasMax && b.Min >= b.Max {
		return domain.Bounds{HasMin: true, HasMax: true, Disabled: true}
	}
	return b
}
