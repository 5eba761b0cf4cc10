package catalog

import "sort"

// Set is a set of relative asset paths.
type Set map[string]struct{}

// NewSet returns a set holding paths.
func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts path.
func (s Set) Add(path string) {
	s[path] = struct{}{}
}

// Has reports whether path is in the set.
func (s Set) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Difference returns the paths of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := NewSet()
	for p := range s {
		if !other.Has(p) {
			out.Add(p)
		}
	}
	return out
}

// Sorted returns the paths in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
