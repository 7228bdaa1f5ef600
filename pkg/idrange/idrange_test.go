package idrange

import (
	"testing"

	"github.com/henderiw/rangealgebra/pkg/rangeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vlans(t *testing.T, s string) []rangeset.Range[uint16] {
	t.Helper()
	rr, err := ParseRanges[uint16](s)
	require.NoError(t, err)
	return rr
}

func TestParseRanges(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    string
		wantErr bool
	}{
		"Empty":      {in: "", want: ""},
		"Single":     {in: "100", want: "100"},
		"Mixed":      {in: "1-10, 20 ,30-40", want: "1-10,20,30-40"},
		"Max":        {in: "65535", want: "65535"},
		"TooBig":     {in: "65536", wantErr: true},
		"Negative":   {in: "-1", wantErr: true},
		"Inverted":   {in: "10-1", wantErr: true},
		"NotANumber": {in: "1-x,y", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr, err := ParseRanges[uint16](tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, Format(rr))
		})
	}
}

func TestParseRangeInverted(t *testing.T) {
	_, err := ParseRange[uint32]("10-1")
	assert.ErrorIs(t, err, rangeset.ErrInvalidRange)
}

func TestParseRangesReportsEveryError(t *testing.T) {
	_, err := ParseRanges[uint16]("x,1-2,70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
	assert.Contains(t, err.Error(), `"70000"`)
}

func TestNormalize(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"Adjacent":    {in: "11-20,1-10", want: "1-20"},
		"Gap":         {in: "1-10,12-20", want: "1-10,12-20"},
		"Overlapping": {in: "5-15,1-10,14,30", want: "1-15,30"},
		"UpToMax":     {in: "65530-65535,65520-65529", want: "65520-65535"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(Normalize(vlans(t, tc.in))))
		})
	}
}

func TestFree(t *testing.T) {
	cases := map[string]struct {
		pool, claimed string
		want          string
		next          uint16
		exhausted     bool
	}{
		"NothingClaimed": {pool: "1000-1999", want: "1000-1999", next: 1000},
		"Hole":           {pool: "1000-1999", claimed: "1000,1002-1010", want: "1001,1011-1999", next: 1001},
		"Edges":          {pool: "1-4094", claimed: "1,4094", want: "2-4093", next: 2},
		"Max":            {pool: "65530-65535", claimed: "65535", want: "65530-65534", next: 65530},
		"Exhausted":      {pool: "1-10", claimed: "1-5,6-10", want: "", exhausted: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			pool, claimed := vlans(t, tc.pool), vlans(t, tc.claimed)
			assert.Equal(t, tc.want, Format(Free(pool, claimed)))

			next, err := Next(pool, claimed)
			if tc.exhausted {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.next, next)
		})
	}
}

func TestIntersect(t *testing.T) {
	assert.Equal(t, "", Format(Intersect(vlans(t, "1-10"), vlans(t, "11-20"))))
	assert.Equal(t, "10", Format(Intersect(vlans(t, "1-10"), vlans(t, "10-20"))))
	assert.Equal(t, "5-10,20-25", Format(Intersect(vlans(t, "1-10,20-30"), vlans(t, "5-25"))))
}

func TestCount(t *testing.T) {
	assert.Equal(t, uint64(0), Count[uint16](nil))
	assert.Equal(t, uint64(15), Count(vlans(t, "1-10,5-15")))
	assert.Equal(t, uint64(4094), Count(vlans(t, "1-4094")))
	assert.Equal(t, uint64(256), Count([]rangeset.Range[uint8]{rangeset.RangeFrom[uint8](0, 255)}))
}
