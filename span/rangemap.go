package span

import "sort"

// Range is a half-open byte interval [Start, End).
type Range struct {
	Start int
	End   int
}

// NewRange builds a range from two offsets.
func NewRange(start, end int) Range { return Range{Start: start, End: end} }

// Len returns the byte length of the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.Start >= r.End }

// Overlaps reports whether two ranges share at least one byte. Touching
// ranges, where one ends exactly where the other starts, do not overlap,
// and an empty range overlaps nothing.
func (r Range) Overlaps(other Range) bool {
	return max(r.Start, other.Start) < min(r.End, other.End)
}

// Contains reports whether the offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// RangeMap is an ordered map from non-overlapping ranges to values, kept as
// a slice sorted by start offset. Empty ranges are allowed and sort among
// their neighbors by start offset. The zero value is ready to use.
type RangeMap[V any] struct {
	entries []rangeEntry[V]
}

type rangeEntry[V any] struct {
	key   Range
	value V
}

// Len returns the number of stored ranges.
func (m *RangeMap[V]) Len() int { return len(m.entries) }

// Collides reports whether r overlaps any stored range. Entries are
// pairwise non-overlapping, so only the predecessor and the entries
// starting inside r need checking.
func (m *RangeMap[V]) Collides(r Range) bool {
	i := m.search(r.Start)
	if i > 0 && r.Overlaps(m.entries[i-1].key) {
		return true
	}
	for ; i < len(m.entries) && m.entries[i].key.Start < r.End; i++ {
		if r.Overlaps(m.entries[i].key) {
			return true
		}
	}
	return false
}

// Conflicts reports whether r cannot coexist with the stored ranges: it
// overlaps one, duplicates one exactly, or one of the two sits strictly
// inside the other. Unlike Collides this also rejects an empty range in
// the interior of a stored range and a duplicated empty range, which
// would make the insertion order ambiguous.
func (m *RangeMap[V]) Conflicts(r Range) bool {
	conflict := func(e Range) bool {
		if e == r {
			return true
		}
		return r.End > e.Start && e.End > r.Start
	}
	i := m.search(r.Start)
	if i > 0 && conflict(m.entries[i-1].key) {
		return true
	}
	for ; i < len(m.entries) && m.entries[i].key.Start <= r.End; i++ {
		if conflict(m.entries[i].key) {
			return true
		}
	}
	return false
}

// Get returns the value stored under an exactly matching range.
func (m *RangeMap[V]) Get(r Range) (V, bool) {
	for i := m.search(r.Start); i < len(m.entries) && m.entries[i].key.Start == r.Start; i++ {
		if m.entries[i].key == r {
			return m.entries[i].value, true
		}
	}
	var zero V
	return zero, false
}

// Insert stores the value under r, keeping entries sorted by start offset.
// The caller is expected to have rejected collisions first.
func (m *RangeMap[V]) Insert(r Range, v V) {
	i := m.search(r.Start)
	m.entries = append(m.entries, rangeEntry[V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = rangeEntry[V]{key: r, value: v}
}

// Each calls fn for every entry in start order until fn returns false.
func (m *RangeMap[V]) Each(fn func(Range, V) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// search returns the index of the first entry whose start is >= start.
func (m *RangeMap[V]) search(start int) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].key.Start >= start
	})
}
