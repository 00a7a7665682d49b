package domain

// ListMarker is appended to a path when the walk descends into a list.
// All elements of a list share the same marked path.
const ListMarker = "[]"

// MapStructure records every field path found in v into reg.
//
// Object keys are joined to currentPath with "."; list elements are walked
// under currentPath+ListMarker, which is never registered on its own.
// Scalars end the recursion.
func MapStructure(v Value, reg *Registry, currentPath string) {
	switch v.Kind {
	case KindObject:
		for _, m := range v.Members() {
			childPath := m.Key
			if currentPath != "" {
				childPath = currentPath + "." + m.Key
			}
			reg.Add(childPath)
			MapStructure(m.Value, reg, childPath)
		}
	case KindList:
		listPath := currentPath + ListMarker
		for _, item := range v.List {
			MapStructure(item, reg, listPath)
		}
	}
}

// CountEmpty increments counts[key] for every object member whose value is
// empty, at any depth. Counters are keyed by the bare field name, so
// "user.id" and "order.id" share the "id" counter.
func CountEmpty(v Value, counts EmptyCounts) {
	switch v.Kind {
	case KindObject:
		for _, m := range v.Members() {
			if m.Value.IsEmpty() {
				counts[m.Key]++
			}
			CountEmpty(m.Value, counts)
		}
	case KindList:
		for _, item := range v.List {
			CountEmpty(item, counts)
		}
	}
}
