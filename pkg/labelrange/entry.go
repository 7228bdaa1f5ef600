package labelrange

import (
	"fmt"
	"sort"

	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"github.com/samber/lo"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

// Entry is a range tagged with labels, e.g. a booking owned by a room or
// an address block owned by a tenant.
type Entry[T any] interface {
	Range() rangeset.Range[T]
	Labels() labels.Set
	String() string
}

type entry[T any] struct {
	r      rangeset.Range[T]
	labels labels.Set
}

func NewEntry[T any](r rangeset.Range[T], l labels.Set) Entry[T] {
	if l == nil {
		l = labels.Set{}
	}
	return entry[T]{
		r:      r,
		labels: l,
	}
}

func (r entry[T]) Range() rangeset.Range[T] { return r.r }
func (r entry[T]) Labels() labels.Set       { return r.labels }
func (r entry[T]) String() string {
	return fmt.Sprintf("range: %s, labels: %s", r.r.String(), r.labels.String())
}

type Entries[T any] []Entry[T]

// GetByLabel returns the entries whose labels match selector. A nil
// selector matches everything.
func (r Entries[T]) GetByLabel(selector labels.Selector) Entries[T] {
	if selector == nil {
		selector = labels.Everything()
	}
	return lo.Filter(r, func(e Entry[T], _ int) bool {
		return selector.Matches(e.Labels())
	})
}

// Ranges returns the ranges of all entries, in entry order.
func (r Entries[T]) Ranges() []rangeset.Range[T] {
	return lo.Map(r, func(e Entry[T], _ int) rangeset.Range[T] {
		return e.Range()
	})
}

// Select returns the ranges of the entries matching selector.
func (r Entries[T]) Select(selector labels.Selector) []rangeset.Range[T] {
	return r.GetByLabel(selector).Ranges()
}

// SelectorFromMap returns a selector requiring every key of l to equal its
// value.
func SelectorFromMap(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	// sorted keys keep error reporting deterministic
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		req, err := labels.NewRequirement(k, selection.Equals, []string{l[k]})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
