package hash

import (
	"github.com/ryogrid/cqbase/types"
)

// ValueSequenceSet is a set of ordered value sequences. Sequences are bucketed
// by HashValues and compared value by value inside a bucket.
type ValueSequenceSet struct {
	buckets map[uint32][][]types.Value
	size    int
}

func NewValueSequenceSet() *ValueSequenceSet {
	return &ValueSequenceSet{make(map[uint32][][]types.Value), 0}
}

// Insert adds vals and reports whether it was not present before.
func (s *ValueSequenceSet) Insert(vals []types.Value) bool {
	h := HashValues(vals)
	for _, member := range s.buckets[h] {
		if equalSequences(member, vals) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], vals)
	s.size++
	return true
}

func (s *ValueSequenceSet) Contains(vals []types.Value) bool {
	for _, member := range s.buckets[HashValues(vals)] {
		if equalSequences(member, vals) {
			return true
		}
	}
	return false
}

func (s *ValueSequenceSet) Size() int {
	return s.size
}

func (s *ValueSequenceSet) Clear() {
	s.buckets = make(map[uint32][][]types.Value)
	s.size = 0
}

func equalSequences(a []types.Value, b []types.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].CompareEquals(b[i]) {
			return false
		}
	}
	return true
}
