package rangeset

import "cmp"

// Coalesce returns the minimal set of disjoint ranges covering the same
// points as rr. See CoalesceFunc.
func Coalesce[T cmp.Ordered](rr []Range[T]) []Range[T] {
	return CoalesceFunc(rr, cmp.Compare[T])
}

// CoalesceFunc reduces rr to the minimal set of disjoint ranges covering the
// same points, using cmp as the order. Ranges are closed: two ranges that
// share only a boundary point are merged into one. The input is not
// modified. The order of the result is the order in which the merged ranges
// were discovered, not a sorted order; use Sort when order matters.
func CoalesceFunc[T any](rr []Range[T], cmp func(a, b T) int) []Range[T] {
	if len(rr) == 0 {
		return nil
	}
	o := ordering[T](cmp)

	q := newQueue(rr)
	out := make([]Range[T], 0, len(rr))
	for q.len() > 0 {
		seed := q.pop()
		// A candidate deferred early in a pass may only touch the seed once
		// a later candidate has grown it, so keep passing over the queue
		// until a pass absorbs nothing.
		for absorbed := true; absorbed; {
			seed, absorbed = absorb(o, seed, q)
		}
		out = append(out, seed)
	}
	return out
}

// absorb makes exactly one pass over the items currently queued, merging
// every candidate that touches seed into it and re-queueing the rest.
func absorb[T any](o ordering[T], seed Range[T], q *queue[T]) (Range[T], bool) {
	absorbed := false
	for k := q.len(); k > 0; k-- {
		c := q.pop()
		switch {
		case startsWithin(o, c, seed):
			//   seed
			// f------t
			//     f------t
			//        c
			seed.to = o.max(seed.to, c.to)
		case endsWithin(o, c, seed):
			//        seed
			//     f------t
			// f------t
			//    c
			seed.from = o.min(seed.from, c.from)
		case strictlyContains(o, c, seed):
			//       c
			// f-------------t
			//    f------t
			//      seed
			seed = c
		default:
			// no contact yet, keep it for a later seed or pass.
			q.push(c)
			continue
		}
		absorbed = true
	}
	return seed, absorbed
}
