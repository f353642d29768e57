package catalog

// Overlay carries per-scenario value overrides keyed by item code. Overrides
// are merged at read time into a fresh snapshot; the base catalog is never
// mutated.
type Overlay map[string]float64

// With returns a new snapshot with the overlay applied. Codes that do not
// exist in the base catalog are ignored. Percentage invariants are re-checked
// because an override may push a rate out of range.
func (s *Snapshot) With(ov Overlay) (*Snapshot, error) {
	if len(ov) == 0 {
		return s, nil
	}
	items := s.Items()
	for i := range items {
		if v, ok := ov[items[i].Codigo]; ok {
			items[i].Valor = v
		}
	}
	return NewSnapshot(items)
}
