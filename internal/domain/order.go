package domain

import (
	"sort"
	"strconv"
)

// SortViolations orders violations by location, ascending. Violations at the
// same location keep their relative order.
func SortViolations(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		return compareLocation(vs[i].Location, vs[j].Location) < 0
	})
}

// compareLocation compares two locations segment by segment. Array indexes
// compare numerically; a location sorts before any location it prefixes.
func compareLocation(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareSegment(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
