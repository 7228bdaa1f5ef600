package timerange

import (
	"fmt"
	"time"

	"github.com/henderiw/rangealgebra/pkg/labelrange"
	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

// Calendar holds labelled bookings, e.g. {"room": "a"} or {"person": "bob"},
// and answers availability questions over any label selection. A Calendar
// is not safe for concurrent use.
type Calendar struct {
	opts     []rangeset.Option
	bookings labelrange.Entries[time.Time]
}

// NewCalendar returns an empty calendar. opts are handed to the builders
// that normalize its bookings.
func NewCalendar(opts ...rangeset.Option) *Calendar {
	return &Calendar{opts: opts}
}

// Book records the booking b under labels l.
func (r *Calendar) Book(b Range, l labels.Set) error {
	if !b.IsValidFunc(time.Time.Compare) {
		return fmt.Errorf("booking %s: %w", b, rangeset.ErrInvalidRange)
	}
	r.bookings = append(r.bookings, labelrange.NewEntry(b, l))
	return nil
}

// Bookings returns the bookings matching selector, in booking order.
func (r *Calendar) Bookings(selector labels.Selector) labelrange.Entries[time.Time] {
	return r.bookings.GetByLabel(selector)
}

// Busy returns the merged busy time of the bookings matching selector.
func (r *Calendar) Busy(selector labels.Selector) (*rangeset.RangeSet[time.Time], error) {
	b := rangeset.NewBuilder(time.Time.Compare, r.opts...)
	for _, br := range r.bookings.Select(selector) {
		b.AddRange(br)
	}
	return b.Set()
}

// Availability returns the parts of window in which none of the bookings
// matching selector take place.
func (r *Calendar) Availability(window Range, selector labels.Selector) []Range {
	return Free(window, r.bookings.Select(selector))
}

// Conflicts returns the windows in which a booking matching a overlaps a
// booking matching b.
func (r *Calendar) Conflicts(a, b labels.Selector) []Range {
	return Conflicts(r.bookings.Select(a), r.bookings.Select(b))
}
