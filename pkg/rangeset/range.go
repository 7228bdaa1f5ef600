package rangeset

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidRange is returned when a range is constructed with from > to.
var ErrInvalidRange = errors.New("invalid range")

// Range is a closed interval [from, to] over any totally ordered type.
// A Range is a value: it is never mutated after construction.
type Range[T any] struct {
	from T
	to   T
}

// RangeFrom returns the range [from, to] without validating the endpoints.
func RangeFrom[T any](from, to T) Range[T] {
	return Range[T]{from: from, to: to}
}

// NewRange returns the range [from, to], or ErrInvalidRange if from sorts
// after to according to cmp.
func NewRange[T any](from, to T, cmp func(a, b T) int) (Range[T], error) {
	r := Range[T]{from: from, to: to}
	if !r.IsValidFunc(cmp) {
		return Range[T]{}, fmt.Errorf("%w: from %v is after to %v", ErrInvalidRange, from, to)
	}
	return r, nil
}

// NewOrderedRange is NewRange for types with a natural order.
func NewOrderedRange[T cmp.Ordered](from, to T) (Range[T], error) {
	return NewRange(from, to, cmp.Compare[T])
}

// From returns the lower bound of r.
func (r Range[T]) From() T { return r.from }

// To returns the upper bound of r.
func (r Range[T]) To() T { return r.to }

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.from, r.to)
}

// IsValidFunc reports whether from <= to.
func (r Range[T]) IsValidFunc(cmp func(a, b T) int) bool {
	return cmp(r.from, r.to) <= 0
}

// ContainsFunc reports whether v lies within [from, to].
func (r Range[T]) ContainsFunc(v T, cmp func(a, b T) int) bool {
	return ordering[T](cmp).within(v, r.from, r.to)
}

// TouchesFunc reports whether r and other share at least one point. Ranges
// that only meet at a boundary touch; this is the rule Coalesce merges by.
func (r Range[T]) TouchesFunc(other Range[T], cmp func(a, b T) int) bool {
	o := ordering[T](cmp)
	return o.le(r.from, other.to) && o.le(other.from, r.to)
}

// OverlapsFunc reports whether r and other share a non-empty extent. Ranges
// that only meet at a boundary do not overlap; this is the rule Intersect
// uses.
func (r Range[T]) OverlapsFunc(other Range[T], cmp func(a, b T) int) bool {
	o := ordering[T](cmp)
	return startsWithinHalfOpen(o, other, r) ||
		endsWithinHalfOpen(o, other, r) ||
		strictlyContains(o, other, r)
}

// Sort orders rr by from, then by to, in place.
func Sort[T any](rr []Range[T], cmp func(a, b T) int) {
	slices.SortFunc(rr, func(a, b Range[T]) int {
		if c := cmp(a.from, b.from); c != 0 {
			return c
		}
		return cmp(a.to, b.to)
	})
}
