package ecs

// intersect returns slot ids present in both sets.
func intersect(a, b *SparseSet) []entityID {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if len(a.denseIDs) > len(b.denseIDs) {
		a, b = b, a
	}
	out := make([]entityID, 0, len(a.denseIDs))
	for _, id := range a.denseIDs {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
