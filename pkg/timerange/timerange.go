// Package timerange applies the range algebra to time windows: merging busy
// periods, finding free time and spotting overlapping bookings.
package timerange

import (
	"fmt"
	"strings"
	"time"

	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"github.com/samber/lo"
)

// Layout is the format of the date-time literals ParseTime accepts.
const Layout = "2006-01-02 15:04"

type Range = rangeset.Range[time.Time]

func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected layout %q", s, Layout)
	}
	return t, nil
}

// ParseRange parses "from/to", e.g. "2021-04-02 08:00/2021-04-02 09:00".
func ParseRange(s string) (Range, error) {
	var r Range
	h := strings.IndexByte(s, '/')
	if h == -1 {
		return r, fmt.Errorf("no slash in range %q", s)
	}
	from, err := ParseTime(s[:h])
	if err != nil {
		return r, fmt.Errorf("invalid from in range %q: %w", s, err)
	}
	to, err := ParseTime(s[h+1:])
	if err != nil {
		return r, fmt.Errorf("invalid to in range %q: %w", s, err)
	}
	return rangeset.NewRange(from, to, time.Time.Compare)
}

// MustRange is ParseRange that panics on error, for literals known to be
// valid.
func MustRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Coalesce merges rr into disjoint windows in chronological order.
// Back-to-back windows merge into one.
func Coalesce(rr []Range) []Range {
	return sorted(rangeset.CoalesceFunc(rr, time.Time.Compare))
}

// Intersect returns the chronological windows covered by both a and b.
// Back-to-back windows do not intersect.
func Intersect(a, b []Range) []Range {
	return sorted(rangeset.IntersectFunc(a, b, time.Time.Compare))
}

// Subtract returns the chronological windows of a not covered by b.
func Subtract(a, b []Range) []Range {
	return sorted(rangeset.SubtractFunc(a, b, time.Time.Compare))
}

// Free returns the parts of window not covered by any busy period.
func Free(window Range, busy []Range) []Range {
	return Subtract([]Range{window}, busy)
}

// FreeSlots returns the free parts of window that last at least minLength.
func FreeSlots(window Range, busy []Range, minLength time.Duration) []Range {
	return lo.Filter(Free(window, busy), func(r Range, _ int) bool {
		return length(r) >= minLength
	})
}

// Conflicts returns the windows in which a and b are both busy.
func Conflicts(a, b []Range) []Range {
	return Intersect(a, b)
}

// Duration returns the total time covered by rr, counting overlaps once.
func Duration(rr []Range) time.Duration {
	return lo.SumBy(rangeset.CoalesceFunc(rr, time.Time.Compare), length)
}

func length(r Range) time.Duration {
	return r.To().Sub(r.From())
}

func sorted(rr []Range) []Range {
	rangeset.Sort(rr, time.Time.Compare)
	return rr
}
