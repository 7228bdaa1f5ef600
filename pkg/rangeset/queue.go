package rangeset

// queue is a FIFO of ranges backed by a ring buffer sized to the input. It
// doubles when full, which only Subtract's interior splits can cause.
type queue[T any] struct {
	buf  []Range[T]
	head int
	n    int
}

func newQueue[T any](rr []Range[T]) *queue[T] {
	size := len(rr)
	if size < 4 {
		size = 4
	}
	q := &queue[T]{buf: make([]Range[T], size)}
	for _, r := range rr {
		q.push(r)
	}
	return q
}

func (q *queue[T]) len() int { return q.n }

func (q *queue[T]) push(r Range[T]) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = r
	q.n++
}

// pop panics on an empty queue; callers bound their loops by len.
func (q *queue[T]) pop() Range[T] {
	if q.n == 0 {
		panic("rangeset: pop from empty queue")
	}
	r := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return r
}

// drain returns the queued ranges in FIFO order and empties the queue.
func (q *queue[T]) drain() []Range[T] {
	out := make([]Range[T], 0, q.n)
	for q.n > 0 {
		out = append(out, q.pop())
	}
	return out
}

func (q *queue[T]) grow() {
	buf := make([]Range[T], len(q.buf)*2)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
