// Package relation reconciles many-to-many collections against a list of
// desired related-entity ids.
package relation

// Resolve looks up every id and returns the entities that exist, in lookup
// order. Unknown ids are dropped silently and duplicates are resolved once,
// so the result is exactly the set of distinct resolvable ids. The caller
// replaces the owning collection with the result; passing the same list
// twice therefore yields the same final set.
func Resolve[T any](ids []uint, find func(id uint) (*T, error)) []T {
	out := make([]T, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		e, err := find(id)
		if err != nil || e == nil {
			continue
		}
		out = append(out, *e)
	}
	return out
}
