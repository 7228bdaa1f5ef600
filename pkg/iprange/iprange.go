// Package iprange applies the range algebra to IP address ranges expressed as
// netipx.IPRange values.
//
// Addresses are discrete, so an inclusive range [from, to] is run through the
// algebra as the half-open span [from, to+1). That way 10.0.0.0-10.0.0.9 and
// 10.0.0.10-10.0.0.19 merge, and removing 10.0.0.5-10.0.0.6 from a block
// leaves neither address behind.
package iprange

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"github.com/samber/lo"
	"go4.org/netipx"
)

// bound is a position between addresses. {a, false} is the position right
// before a; {a, true} is only used after the last address of a family, where
// a.Next() does not exist.
type bound struct {
	addr netip.Addr
	past bool
}

func compareBounds(a, b bound) int {
	if c := a.addr.Compare(b.addr); c != 0 {
		return c
	}
	switch {
	case a.past == b.past:
		return 0
	case b.past:
		return -1
	default:
		return 1
	}
}

func after(addr netip.Addr) bound {
	if next := addr.Next(); next.IsValid() {
		return bound{addr: next}
	}
	return bound{addr: addr, past: true}
}

func toSpan(r netipx.IPRange) rangeset.Range[bound] {
	return rangeset.RangeFrom(bound{addr: r.From()}, after(r.To()))
}

func fromSpan(s rangeset.Range[bound]) (netipx.IPRange, bool) {
	from := s.From().addr
	if s.From().past {
		from = from.Next()
	}
	to := s.To().addr
	if !s.To().past {
		to = to.Prev()
	}
	r := netipx.IPRangeFrom(from, to)
	return r, r.IsValid()
}

func toSpans(rr []netipx.IPRange) []rangeset.Range[bound] {
	return lo.Map(rr, func(r netipx.IPRange, _ int) rangeset.Range[bound] {
		return toSpan(r)
	})
}

func fromSpans(ss []rangeset.Range[bound]) []netipx.IPRange {
	rangeset.Sort(ss, compareBounds)
	out := make([]netipx.IPRange, 0, len(ss))
	for _, s := range ss {
		if r, ok := fromSpan(s); ok {
			out = append(out, r)
		}
	}
	return out
}

// ParseRange parses "from-to", a single address or a CIDR prefix.
func ParseRange(s string) (netipx.IPRange, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("invalid prefix %q: %w", s, err)
		}
		return netipx.RangeOfPrefix(p), nil
	}
	h := strings.IndexByte(s, '-')
	if h == -1 {
		a, err := netip.ParseAddr(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("invalid address %q: %w", s, err)
		}
		return netipx.IPRangeFrom(a, a), nil
	}
	from, err := netip.ParseAddr(s[:h])
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("invalid from address %q in range %q", s[:h], s)
	}
	to, err := netip.ParseAddr(s[h+1:])
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("invalid to address %q in range %q", s[h+1:], s)
	}
	r := netipx.IPRangeFrom(from, to)
	if !r.IsValid() {
		return netipx.IPRange{}, fmt.Errorf("%w: %q", rangeset.ErrInvalidRange, s)
	}
	return r, nil
}

// Coalesce returns the minimal sorted list of ranges covering rr. Adjacent
// ranges are merged.
func Coalesce(rr []netipx.IPRange) []netipx.IPRange {
	return fromSpans(rangeset.CoalesceFunc(toSpans(rr), compareBounds))
}

// Intersect returns the minimal sorted list of ranges of addresses in both a
// and b.
func Intersect(a, b []netipx.IPRange) []netipx.IPRange {
	return fromSpans(rangeset.IntersectFunc(toSpans(a), toSpans(b), compareBounds))
}

// Subtract returns the minimal sorted list of ranges of addresses in a but
// not in b.
func Subtract(a, b []netipx.IPRange) []netipx.IPRange {
	return fromSpans(rangeset.SubtractFunc(toSpans(a), toSpans(b), compareBounds))
}

// Prefixes returns the minimal list of prefixes covering rr.
func Prefixes(rr []netipx.IPRange) []netip.Prefix {
	return lo.FlatMap(Coalesce(rr), func(r netipx.IPRange, _ int) []netip.Prefix {
		return r.Prefixes()
	})
}
