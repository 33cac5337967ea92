package variance

import "weightlog/internal/domain"

// Derive returns a copy of entries with Variance recomputed for each entry.
//
// The input slice is not modified. Entries are used in the order given.
func Derive(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for i, e := range entries {
		e.Variance = nil
		if i > 0 && !e.Weight.IsEmpty() {
			e.Variance = between(entries[i-1].Weight, e.Weight)
		}
		out = append(out, e)
	}
	return out
}

// between returns cur-prev when both parse to finite numbers.
func between(prev, cur domain.Weight) *float64 {
	if prev.IsEmpty() {
		return nil
	}
	a, ok := cur.Float()
	if !ok {
		return nil
	}
	b, ok := prev.Float()
	if !ok {
		return nil
	}
	v := a - b
	return &v
}
