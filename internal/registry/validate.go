package registry

// CheckUnique reports every name shared by more than one descriptor. It
// returns nil when all names are distinct.
func (r *Registry) CheckUnique() error {
	seen := make(map[string]int)
	for d := range r.All() {
		seen[d.Name]++
	}

	dups := make(map[string]int)
	for name, n := range seen {
		if n > 1 {
			dups[name] = n
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &DuplicateNameError{Counts: dups}
}
