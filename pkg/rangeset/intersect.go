package rangeset

import "cmp"

// Intersect returns the disjoint ranges covered by both first and second.
// See IntersectFunc.
func Intersect[T cmp.Ordered](first, second []Range[T]) []Range[T] {
	return IntersectFunc(first, second, cmp.Compare[T])
}

// IntersectFunc returns the disjoint ranges covered by both first and second,
// using cmp as the order.
//
// Unlike Coalesce, overlap is judged on half-open bounds: ranges that only
// share a boundary point, such as back-to-back time slots, have an empty
// intersection.
func IntersectFunc[T any](first, second []Range[T], cmp func(a, b T) int) []Range[T] {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}
	o := ordering[T](cmp)

	var common []Range[T]
	for _, s := range CoalesceFunc(first, cmp) {
		for _, r := range second {
			switch {
			case startsWithinHalfOpen(o, r, s):
				//     s
				// f-------t
				//    f-------t
				//        r
				common = append(common, Range[T]{from: r.from, to: o.min(s.to, r.to)})
			case endsWithinHalfOpen(o, r, s):
				//        s
				//    f-------t
				// f-------t
				//     r
				common = append(common, Range[T]{from: o.max(s.from, r.from), to: r.to})
			case strictlyContains(o, r, s):
				common = append(common, s)
			}
		}
	}
	// second may hold overlapping ranges, which leave overlapping fragments.
	return CoalesceFunc(common, cmp)
}
