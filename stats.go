package cu2qu

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Stats counts how many splines of each segment count were produced. A
// Stats may be shared by concurrent conversions. The zero value is ready to
// use, and methods on a nil *Stats do nothing.
type Stats struct {
	mu     sync.Mutex
	counts map[int]int
}

// Add records one spline of n segments.
func (s *Stats) Add(n int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts == nil {
		s.counts = make(map[int]int)
	}
	s.counts[n]++
}

// Merge adds all of o's counts to s.
func (s *Stats) Merge(o *Stats) {
	if s == nil || o == nil || s == o {
		return
	}
	counts := o.Counts()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts == nil {
		s.counts = make(map[int]int, len(counts))
	}
	for n, c := range counts {
		s.counts[n] += c
	}
}

// Counts returns a copy of the counts, keyed by segment count.
func (s *Stats) Counts() map[int]int {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.counts)
}

// Total returns the number of splines recorded.
func (s *Stats) Total() int {
	var total int
	for _, c := range s.Counts() {
		total += c
	}
	return total
}

// String lists the counts in ascending order of segment count, one "n: count"
// line per entry.
func (s *Stats) String() string {
	counts := s.Counts()
	sb := &strings.Builder{}
	for _, n := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(sb, "%d: %d\n", n, counts[n])
	}
	return sb.String()
}
