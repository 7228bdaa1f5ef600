package rangeset

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

type Option func(*options)

type options struct {
	log logr.Logger
}

// WithLogger sets the logger a Builder traces its normalization to. Traces
// are emitted at V(1).
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Builder accumulates ranges to add and remove and produces a normalized
// RangeSet. Removals only affect ranges added before them. A Builder is not
// safe for concurrent use.
type Builder[T any] struct {
	cmp  func(a, b T) int
	log  logr.Logger
	in   []Range[T]
	out  []Range[T]
	errs error
}

func NewBuilder[T any](cmp func(a, b T) int, opts ...Option) *Builder[T] {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder[T]{
		cmp: cmp,
		log: o.log,
	}
}

func NewOrderedBuilder[T cmp.Ordered](opts ...Option) *Builder[T] {
	return NewBuilder(cmp.Compare[T], opts...)
}

// AddRange adds all points of r to the set. An inverted range is recorded as
// an error and otherwise ignored.
func (b *Builder[T]) AddRange(r Range[T]) {
	if !r.IsValidFunc(b.cmp) {
		b.reject("addRange", r)
		return
	}
	if len(b.out) > 0 {
		b.normalize()
	}
	b.in = append(b.in, r)
}

// RemoveRange removes all points of r from the set.
func (b *Builder[T]) RemoveRange(r Range[T]) {
	if !r.IsValidFunc(b.cmp) {
		b.reject("removeRange", r)
		return
	}
	b.out = append(b.out, r)
}

// AddSet adds all ranges of s to the set.
func (b *Builder[T]) AddSet(s *RangeSet[T]) {
	if s == nil {
		return
	}
	for _, r := range s.rr {
		b.AddRange(r)
	}
}

// RemoveSet removes all ranges of s from the set.
func (b *Builder[T]) RemoveSet(s *RangeSet[T]) {
	if s == nil {
		return
	}
	for _, r := range s.rr {
		b.RemoveRange(r)
	}
}

func (b *Builder[T]) reject(op string, r Range[T]) {
	err := fmt.Errorf("%s(%v): %w", op, r, ErrInvalidRange)
	b.log.V(1).Info("rejecting range", "op", op, "range", r.String())
	b.errs = errors.Join(b.errs, err)
}

// normalize makes b.in the minimal sorted list of ranges describing the set
// and empties b.out.
func (b *Builder[T]) normalize() {
	inCount, outCount := len(b.in), len(b.out)
	if len(b.out) == 0 {
		b.in = CoalesceFunc(b.in, b.cmp)
	} else {
		b.in = SubtractFunc(b.in, b.out, b.cmp)
	}
	Sort(b.in, b.cmp)
	b.out = nil
	b.log.V(1).Info("normalized", "added", inCount, "removed", outCount, "ranges", len(b.in))
}

// Set returns the normalized set. Any ranges rejected since the last call are
// reported as a joined error alongside the set built from the valid ones.
func (b *Builder[T]) Set() (*RangeSet[T], error) {
	b.normalize()
	s := &RangeSet[T]{
		cmp: b.cmp,
		rr:  append([]Range[T]{}, b.in...),
	}
	if b.errs == nil {
		return s, nil
	}
	errs := b.errs
	b.errs = nil
	return s, errs
}

// RangeSet is an immutable set of points described by ranges. The ranges are
// sorted, disjoint and never touch one another; the methods below rely on it.
type RangeSet[T any] struct {
	cmp func(a, b T) int
	rr  []Range[T]
}

func newRangeSet[T any](rr []Range[T], cmp func(a, b T) int) *RangeSet[T] {
	Sort(rr, cmp)
	return &RangeSet[T]{cmp: cmp, rr: rr}
}

// Ranges returns the minimal sorted list of ranges that covers s.
func (s *RangeSet[T]) Ranges() []Range[T] {
	return append([]Range[T]{}, s.rr...)
}

func (s *RangeSet[T]) Len() int { return len(s.rr) }

func (s *RangeSet[T]) IsEmpty() bool { return len(s.rr) == 0 }

// Extent returns the range from the lowest to the highest point of s.
func (s *RangeSet[T]) Extent() (Range[T], bool) {
	if len(s.rr) == 0 {
		return Range[T]{}, false
	}
	return Range[T]{from: s.rr[0].from, to: s.rr[len(s.rr)-1].to}, true
}

// Contains reports whether v is a point of s.
func (s *RangeSet[T]) Contains(v T) bool {
	r, ok := s.rangeAt(v)
	return ok && r.ContainsFunc(v, s.cmp)
}

// ContainsRange reports whether every point of r is in s.
func (s *RangeSet[T]) ContainsRange(r Range[T]) bool {
	c, ok := s.rangeAt(r.from)
	return ok && coveredBy(ordering[T](s.cmp), r, c)
}

// Overlaps reports whether r shares a non-empty extent with s, using the
// same half-open rule as Intersect.
func (s *RangeSet[T]) Overlaps(r Range[T]) bool {
	o := ordering[T](s.cmp)
	for _, c := range s.rr {
		if entirelyBefore(o, r, c) {
			return false
		}
		if c.OverlapsFunc(r, s.cmp) {
			return true
		}
	}
	return false
}

// rangeAt returns the last range of s starting at or before v.
func (s *RangeSet[T]) rangeAt(v T) (Range[T], bool) {
	i := sort.Search(len(s.rr), func(i int) bool {
		return s.cmp(s.rr[i].from, v) > 0
	})
	if i == 0 {
		return Range[T]{}, false
	}
	return s.rr[i-1], true
}

// Union returns the points in s or other.
func (s *RangeSet[T]) Union(other *RangeSet[T]) *RangeSet[T] {
	rr := append(s.Ranges(), other.ranges()...)
	return newRangeSet(CoalesceFunc(rr, s.cmp), s.cmp)
}

// Intersect returns the points s and other have in common.
func (s *RangeSet[T]) Intersect(other *RangeSet[T]) *RangeSet[T] {
	return newRangeSet(IntersectFunc(s.rr, other.ranges(), s.cmp), s.cmp)
}

// Subtract returns the points of s that are not in other.
func (s *RangeSet[T]) Subtract(other *RangeSet[T]) *RangeSet[T] {
	return newRangeSet(SubtractFunc(s.rr, other.ranges(), s.cmp), s.cmp)
}

func (s *RangeSet[T]) ranges() []Range[T] {
	if s == nil {
		return nil
	}
	return s.rr
}

func (s *RangeSet[T]) String() string {
	return "{" + strings.Join(lo.Map(s.rr, func(r Range[T], _ int) string {
		return r.String()
	}), ", ") + "}"
}
