package rangeset

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSubtract(t *testing.T) {
	cases := map[string]struct {
		minuends    []Range[time.Time]
		subtrahends []Range[time.Time]
		want        []Range[time.Time]
	}{
		"EmptyMinuends": {
			minuends:    nil,
			subtrahends: []Range[time.Time]{tr("08:00", "09:00")},
			want:        nil,
		},
		"EmptySubtrahends": {
			minuends:    []Range[time.Time]{tr("09:00", "10:00"), tr("08:00", "09:00")},
			subtrahends: nil,
			want:        []Range[time.Time]{tr("08:00", "10:00")},
		},
		"LargeFromSmall": {
			minuends:    []Range[time.Time]{tr("08:30", "09:00")},
			subtrahends: []Range[time.Time]{tr("08:00", "10:00")},
			want:        nil,
		},
		"Identical": {
			minuends:    []Range[time.Time]{tr("08:00", "10:00")},
			subtrahends: []Range[time.Time]{tr("08:00", "10:00")},
			want:        nil,
		},
		"OverlapsEnd": {
			minuends:    []Range[time.Time]{tr("08:00", "10:00")},
			subtrahends: []Range[time.Time]{tr("09:50", "11:00")},
			want:        []Range[time.Time]{tr("08:00", "09:50")},
		},
		"OverlapsStart": {
			minuends:    []Range[time.Time]{tr("08:00", "10:00")},
			subtrahends: []Range[time.Time]{tr("07:45", "08:15")},
			want:        []Range[time.Time]{tr("08:15", "10:00")},
		},
		"Interior": {
			minuends:    []Range[time.Time]{tr("08:00", "10:00")},
			subtrahends: []Range[time.Time]{tr("08:30", "09:00")},
			want:        []Range[time.Time]{tr("08:00", "08:30"), tr("09:00", "10:00")},
		},
		"Disjoint": {
			minuends:    []Range[time.Time]{tr("08:00", "09:00")},
			subtrahends: []Range[time.Time]{tr("06:00", "07:00"), tr("10:00", "11:00")},
			want:        []Range[time.Time]{tr("08:00", "09:00")},
		},
		"Multiple": {
			minuends: []Range[time.Time]{
				tr("08:00", "09:00"),
				tr("10:00", "11:00"),
				tr("12:00", "13:00"),
				tr("14:00", "15:00"),
			},
			subtrahends: []Range[time.Time]{
				tr("08:30", "08:45"),
				tr("09:45", "10:15"),
				tr("10:45", "12:15"),
				tr("14:45", "15:15"),
			},
			want: []Range[time.Time]{
				tr("08:00", "08:30"),
				tr("08:45", "09:00"),
				tr("10:15", "10:45"),
				tr("12:15", "13:00"),
				tr("14:00", "14:45"),
			},
		},
		"OneLargeIntoSlices": {
			minuends: []Range[time.Time]{tr("08:00", "12:00")},
			subtrahends: []Range[time.Time]{
				tr("08:30", "08:45"),
				tr("09:30", "09:45"),
				tr("10:30", "11:45"),
			},
			want: []Range[time.Time]{
				tr("08:00", "08:30"),
				tr("08:45", "09:30"),
				tr("09:45", "10:30"),
				tr("11:45", "12:00"),
			},
		},
		"OverlappingSubtrahends": {
			minuends:    []Range[time.Time]{tr("08:00", "12:00")},
			subtrahends: []Range[time.Time]{tr("09:00", "10:00"), tr("09:30", "11:00")},
			want:        []Range[time.Time]{tr("08:00", "09:00"), tr("11:00", "12:00")},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := SubtractFunc(tc.minuends, tc.subtrahends, time.Time.Compare)
			if diff := cmp.Diff(tc.want, got, asSet...); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestSubtractOrderIndependent(t *testing.T) {
	minuends := []Range[int]{RangeFrom(0, 100)}
	subtrahends := []Range[int]{RangeFrom(10, 20), RangeFrom(15, 40), RangeFrom(90, 120), RangeFrom(-5, 2)}
	reversed := []Range[int]{subtrahends[3], subtrahends[2], subtrahends[1], subtrahends[0]}

	want := []Range[int]{RangeFrom(2, 10), RangeFrom(40, 90)}
	if diff := cmp.Diff(want, Subtract(minuends, subtrahends), asSet...); diff != "" {
		t.Errorf("in order: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff(want, Subtract(minuends, reversed), asSet...); diff != "" {
		t.Errorf("reversed: -want, +got:\n%s", diff)
	}
}
