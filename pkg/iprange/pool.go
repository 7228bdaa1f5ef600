package iprange

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/henderiw/rangealgebra/pkg/labelrange"
	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"github.com/samber/lo"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// Pool tracks labelled claims on a set of address ranges. A Pool is not safe
// for concurrent use.
type Pool struct {
	ranges []netipx.IPRange
	claims labelrange.Entries[netip.Addr]
}

// New returns a pool over the union of ranges.
func New(ranges ...netipx.IPRange) (*Pool, error) {
	var errm error
	for _, r := range ranges {
		if !r.IsValid() {
			errm = errors.Join(errm, fmt.Errorf("%w: %s", rangeset.ErrInvalidRange, r))
		}
	}
	if errm != nil {
		return nil, errm
	}
	return &Pool{ranges: Coalesce(ranges)}, nil
}

// Ranges returns the address ranges the pool hands out from.
func (r *Pool) Ranges() []netipx.IPRange {
	return append([]netipx.IPRange{}, r.ranges...)
}

// Claim records ipRange under labels l. The whole range must be part of the
// pool and unclaimed.
func (r *Pool) Claim(ipRange netipx.IPRange, l labels.Set) error {
	if !ipRange.IsValid() {
		return fmt.Errorf("claim %s: %w", ipRange, rangeset.ErrInvalidRange)
	}
	want := []netipx.IPRange{ipRange}
	if outside := Subtract(want, r.ranges); len(outside) > 0 {
		return fmt.Errorf("claim failed, %s does not fit in the pool %v", outside[0], r.ranges)
	}
	if taken := Intersect(want, r.Claimed(nil)); len(taken) > 0 {
		return fmt.Errorf("claim failed, %s already claimed", taken[0])
	}
	r.claims = append(r.claims, labelrange.NewEntry(rangeset.RangeFrom(ipRange.From(), ipRange.To()), l))
	return nil
}

// ClaimAddr claims a single address.
func (r *Pool) ClaimAddr(addr netip.Addr, l labels.Set) error {
	return r.Claim(netipx.IPRangeFrom(addr, addr), l)
}

// ClaimFree claims the first free address.
func (r *Pool) ClaimFree(l labels.Set) (netip.Addr, error) {
	addr, err := r.FindFree()
	if err != nil {
		return netip.Addr{}, err
	}
	return addr, r.ClaimAddr(addr, l)
}

// Release drops every claim matching selector and returns how many were
// dropped. A nil selector releases everything.
func (r *Pool) Release(selector labels.Selector) int {
	if selector == nil {
		selector = labels.Everything()
	}
	keep := lo.Reject(r.claims, func(e labelrange.Entry[netip.Addr], _ int) bool {
		return selector.Matches(e.Labels())
	})
	released := len(r.claims) - len(keep)
	r.claims = keep
	return released
}

// Claimed returns the merged ranges of the claims matching selector.
func (r *Pool) Claimed(selector labels.Selector) []netipx.IPRange {
	return Coalesce(lo.Map(r.claims.Select(selector), func(c rangeset.Range[netip.Addr], _ int) netipx.IPRange {
		return netipx.IPRangeFrom(c.From(), c.To())
	}))
}

// Free returns the unclaimed ranges of the pool.
func (r *Pool) Free() []netipx.IPRange {
	return Subtract(r.ranges, r.Claimed(nil))
}

// FindFree returns the lowest unclaimed address.
func (r *Pool) FindFree() (netip.Addr, error) {
	free := r.Free()
	if len(free) == 0 {
		return netip.Addr{}, fmt.Errorf("no free address in pool %v", r.ranges)
	}
	return free[0].From(), nil
}
