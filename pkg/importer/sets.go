package importer

import (
	"slices"
	"sync"
)

// syncSet is a set of strings that accepts concurrent inserts.
type syncSet struct {
	m sync.Map
}

func (s *syncSet) add(v string) {
	s.m.LoadOrStore(v, struct{}{})
}

// sorted returns members of the set in lexicographic order.
func (s *syncSet) sorted() []string {
	var res []string
	s.m.Range(func(k, _ any) bool {
		res = append(res, k.(string))
		return true
	})
	slices.Sort(res)
	return res
}
