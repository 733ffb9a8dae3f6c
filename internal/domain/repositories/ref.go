package repositories

// SameRef reports whether two optional id references point at the same
// folder. Two nils (both root / no folder) match.
func SameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
