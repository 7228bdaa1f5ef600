package rangeset

// ordering wraps a three-way comparison so the predicates below read as
// plain relations.
type ordering[T any] func(a, b T) int

func (o ordering[T]) lt(a, b T) bool { return o(a, b) < 0 }
func (o ordering[T]) le(a, b T) bool { return o(a, b) <= 0 }

func (o ordering[T]) min(a, b T) T {
	if o.le(a, b) {
		return a
	}
	return b
}

func (o ordering[T]) max(a, b T) T {
	if o.le(a, b) {
		return b
	}
	return a
}

// within reports whether v lies in [from, to].
func (o ordering[T]) within(v, from, to T) bool {
	return o.le(from, v) && o.le(v, to)
}

// Closed-interval predicates. Used by Coalesce and Subtract: a shared
// boundary point counts as contact.

// startsWithin returns whether r begins inside [other.from, other.to].
func startsWithin[T any](o ordering[T], r, other Range[T]) bool {
	return o.within(r.from, other.from, other.to)
}

// endsWithin returns whether r ends inside [other.from, other.to].
func endsWithin[T any](o ordering[T], r, other Range[T]) bool {
	return o.within(r.to, other.from, other.to)
}

// strictlyContains returns whether r extends past other on both sides.
func strictlyContains[T any](o ordering[T], r, other Range[T]) bool {
	return o.lt(r.from, other.from) && o.lt(other.to, r.to)
}

// overlapsStartOf returns whether r overlaps the start of other, possibly
// beginning before it, but stops short of its end.
//
//	   r
//	f------t
//	   f------t
//	    other
func overlapsStartOf[T any](o ordering[T], r, other Range[T]) bool {
	return o.le(r.from, other.from) && o.lt(r.to, other.to)
}

// overlapsEndOf returns whether r begins after the start of other and
// reaches, or passes, its end.
//
//	        r
//	     f------t
//	f------t
//	 other
func overlapsEndOf[T any](o ordering[T], r, other Range[T]) bool {
	return o.lt(other.from, r.from) && o.le(other.to, r.to)
}

// inMiddleOf returns whether r is inside other without touching its edges.
func inMiddleOf[T any](o ordering[T], r, other Range[T]) bool {
	return o.lt(other.from, r.from) && o.lt(r.to, other.to)
}

// coveredBy returns whether r is entirely contained within other.
func coveredBy[T any](o ordering[T], r, other Range[T]) bool {
	return o.le(other.from, r.from) && o.le(r.to, other.to)
}

// entirelyBefore returns whether r ends before other starts.
func entirelyBefore[T any](o ordering[T], r, other Range[T]) bool {
	return o.lt(r.to, other.from)
}

// Half-open predicates. Used by Intersect only: ranges that merely meet at
// a boundary have no common extent.

// startsWithinHalfOpen returns whether r begins inside [other.from, other.to).
func startsWithinHalfOpen[T any](o ordering[T], r, other Range[T]) bool {
	return o.le(other.from, r.from) && o.lt(r.from, other.to)
}

// endsWithinHalfOpen returns whether r ends inside (other.from, other.to].
func endsWithinHalfOpen[T any](o ordering[T], r, other Range[T]) bool {
	return o.lt(other.from, r.to) && o.le(r.to, other.to)
}
