// Package idrange applies the range algebra to ranges of unsigned integer
// ids such as VLANs, VNIs or AS numbers, written as "1-10,20,30-40".
//
// Ids are discrete, so an inclusive range [from, to] is run through the
// algebra as the half-open span [from, to+1): 1-10 and 11-20 merge into
// 1-20, and removing 5 from 1-10 leaves 1-4 and 6-10.
package idrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// bound is a position between ids: {v, false} sits right before v, {v, true}
// right after it. Only the maximum id of T needs the latter.
type bound[T constraints.Unsigned] struct {
	v    T
	past bool
}

func compareBounds[T constraints.Unsigned](a, b bound[T]) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	case a.past == b.past:
		return 0
	case b.past:
		return -1
	default:
		return 1
	}
}

func toSpan[T constraints.Unsigned](r rangeset.Range[T]) rangeset.Range[bound[T]] {
	to := bound[T]{v: r.To() + 1}
	if to.v < r.To() {
		to = bound[T]{v: r.To(), past: true}
	}
	return rangeset.RangeFrom(bound[T]{v: r.From()}, to)
}

func fromSpan[T constraints.Unsigned](s rangeset.Range[bound[T]]) rangeset.Range[T] {
	to := s.To().v
	if !s.To().past {
		to--
	}
	return rangeset.RangeFrom(s.From().v, to)
}

func toSpans[T constraints.Unsigned](rr []rangeset.Range[T]) []rangeset.Range[bound[T]] {
	return lo.Map(rr, func(r rangeset.Range[T], _ int) rangeset.Range[bound[T]] {
		return toSpan(r)
	})
}

func fromSpans[T constraints.Unsigned](ss []rangeset.Range[bound[T]]) []rangeset.Range[T] {
	rangeset.Sort(ss, compareBounds[T])
	return lo.Map(ss, func(s rangeset.Range[bound[T]], _ int) rangeset.Range[T] {
		return fromSpan(s)
	})
}

func parseID[T constraints.Unsigned](s string) (T, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return T(v), nil
}

// ParseRange parses "from-to" or a single id.
func ParseRange[T constraints.Unsigned](s string) (rangeset.Range[T], error) {
	var r rangeset.Range[T]
	from, to, found := strings.Cut(s, "-")
	fromID, err := parseID[T](from)
	if err != nil {
		return r, fmt.Errorf("invalid from id in range %q: %w", s, err)
	}
	if !found {
		return rangeset.RangeFrom(fromID, fromID), nil
	}
	toID, err := parseID[T](to)
	if err != nil {
		return r, fmt.Errorf("invalid to id in range %q: %w", s, err)
	}
	return rangeset.NewOrderedRange(fromID, toID)
}

// ParseRanges parses a comma separated list of ranges, e.g. "1-10,20". It
// reports every invalid element, not just the first.
func ParseRanges[T constraints.Unsigned](s string) ([]rangeset.Range[T], error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var errm error
	rr := []rangeset.Range[T]{}
	for _, e := range strings.Split(s, ",") {
		r, err := ParseRange[T](e)
		if err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		rr = append(rr, r)
	}
	if errm != nil {
		return nil, errm
	}
	return rr, nil
}

// Normalize merges overlapping and adjacent ranges and sorts the result.
func Normalize[T constraints.Unsigned](rr []rangeset.Range[T]) []rangeset.Range[T] {
	return fromSpans(rangeset.CoalesceFunc(toSpans(rr), compareBounds[T]))
}

// Intersect returns the sorted ranges of ids in both a and b.
func Intersect[T constraints.Unsigned](a, b []rangeset.Range[T]) []rangeset.Range[T] {
	return fromSpans(rangeset.IntersectFunc(toSpans(a), toSpans(b), compareBounds[T]))
}

// Free returns the sorted ranges of ids in pool that are not claimed.
func Free[T constraints.Unsigned](pool, claimed []rangeset.Range[T]) []rangeset.Range[T] {
	return fromSpans(rangeset.SubtractFunc(toSpans(pool), toSpans(claimed), compareBounds[T]))
}

// Next returns the lowest id of pool that is not claimed.
func Next[T constraints.Unsigned](pool, claimed []rangeset.Range[T]) (T, error) {
	free := Free(pool, claimed)
	if len(free) == 0 {
		return 0, errors.New("no free id found")
	}
	return free[0].From(), nil
}

// Count returns the number of distinct ids in rr.
func Count[T constraints.Unsigned](rr []rangeset.Range[T]) uint64 {
	return lo.SumBy(Normalize(rr), func(r rangeset.Range[T]) uint64 {
		return uint64(r.To()-r.From()) + 1
	})
}

// Format renders rr in the form ParseRanges accepts.
func Format[T constraints.Unsigned](rr []rangeset.Range[T]) string {
	return strings.Join(lo.Map(rr, func(r rangeset.Range[T], _ int) string {
		if r.From() == r.To() {
			return strconv.FormatUint(uint64(r.From()), 10)
		}
		return fmt.Sprintf("%d-%d", r.From(), r.To())
	}), ",")
}
