package inventory

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelia/internal/errors"
)

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateBedsLetters(t *testing.T) {
	beds, err := GenerateBeds(4, SchemeLetters)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, beds)
}

func TestGenerateBedsNumbers(t *testing.T) {
	beds, err := GenerateBeds(3, "numbers")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, beds)
}

func TestGenerateBedsFullAlphabet(t *testing.T) {
	beds, err := GenerateBeds(MaxLetterBeds, SchemeLetters)
	require.NoError(t, err)
	require.Len(t, beds, 26)
	assert.Equal(t, "A", beds[0])
	assert.Equal(t, "Z", beds[25])
}

func TestGenerateBedsRejectsOversizedLetterRoom(t *testing.T) {
	_, err := GenerateBeds(27, SchemeLetters)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))

	// Numeric naming has no such cap.
	beds, err := GenerateBeds(27, "numbers")
	require.NoError(t, err)
	assert.Len(t, beds, 27)
}

func TestGenerateBedsRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := GenerateBeds(capacity, SchemeLetters)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "identical ranges",
			a:    Interval{date(1), date(5)},
			b:    Interval{date(1), date(5)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{date(1), date(5)},
			b:    Interval{date(3), date(8)},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{date(1), date(10)},
			b:    Interval{date(3), date(5)},
			want: true,
		},
		{
			name: "checkout day equals next checkin",
			a:    Interval{date(1), date(5)},
			b:    Interval{date(5), date(9)},
			want: false,
		},
		{
			name: "fully disjoint",
			a:    Interval{date(1), date(3)},
			b:    Interval{date(7), date(9)},
			want: false,
		},
		{
			name: "one night inside",
			a:    Interval{date(4), date(5)},
			b:    Interval{date(1), date(10)},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestFreeBeds(t *testing.T) {
	rooms := []RoomBeds{
		{Room: "Dorm 1", Beds: []string{"A", "B", "C"}},
		{Room: "Dorm 2", Beds: []string{"1", "2"}},
	}
	occupied := map[BedRef]bool{
		{Room: "Dorm 1", Bed: "B"}: true,
		{Room: "Dorm 2", Bed: "1"}: true,
		{Room: "Dorm 2", Bed: "2"}: true,
	}

	got := FreeBeds(rooms, occupied)
	require.Len(t, got, 2)
	assert.Equal(t, "Dorm 1", got[0].Room)
	assert.Equal(t, []string{"A", "C"}, got[0].FreeBeds)

	// A fully booked room still appears, with no free beds.
	assert.Equal(t, "Dorm 2", got[1].Room)
	assert.Empty(t, got[1].FreeBeds)
}

func TestFreeBedsNothingOccupied(t *testing.T) {
	rooms := []RoomBeds{{Room: "Dorm 1", Beds: []string{"A", "B"}}}
	got := FreeBeds(rooms, nil)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"A", "B"}, got[0].FreeBeds)
}
