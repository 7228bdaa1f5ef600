package rangeset

import "cmp"

// Subtract returns the disjoint ranges of minuends with every point covered
// by subtrahends removed. See SubtractFunc.
func Subtract[T cmp.Ordered](minuends, subtrahends []Range[T]) []Range[T] {
	return SubtractFunc(minuends, subtrahends, cmp.Compare[T])
}

// SubtractFunc returns the disjoint ranges of minuends with every point
// covered by subtrahends removed, using cmp as the order.
//
// Remainders are closed ranges that keep the cut point as their boundary:
// [08:00, 10:00] minus [08:30, 09:00] leaves [08:00, 08:30] and
// [09:00, 10:00].
func SubtractFunc[T any](minuends, subtrahends []Range[T], cmp func(a, b T) int) []Range[T] {
	if len(minuends) == 0 {
		return nil
	}
	o := ordering[T](cmp)

	q := newQueue(CoalesceFunc(minuends, cmp))
	for _, sub := range subtrahends {
		for k := q.len(); k > 0; k-- {
			m := q.pop()
			switch {
			case overlapsEndOf(o, sub, m):
				//          sub
				//      f-------t
				// f-------t
				//     m
				// sub may also lie entirely after m, leaving m untouched.
				q.push(Range[T]{from: m.from, to: o.min(sub.from, m.to)})
			case overlapsStartOf(o, sub, m):
				//    sub
				// f-------t
				//     f-------t
				//         m
				// sub may also lie entirely before m, leaving m untouched.
				q.push(Range[T]{from: o.max(sub.to, m.from), to: m.to})
			case inMiddleOf(o, sub, m):
				//         m
				// f---------------t
				//     f-------t
				//        sub
				q.push(Range[T]{from: m.from, to: sub.from})
				q.push(Range[T]{from: sub.to, to: m.to})
			default:
				// sub covers m entirely, nothing survives.
			}
		}
	}
	return CoalesceFunc(q.drain(), cmp)
}
