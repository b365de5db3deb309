package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	def := Location("")
	assert.Equal(t, DefaultTimezone, def.String())

	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "America/Fortaleza", Location("America/Fortaleza").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestToCanonicalRoundTrip(t *testing.T) {
	loc := Location(DefaultTimezone)
	local := time.Date(2026, 3, 2, 9, 0, 0, 0, loc)

	canonical := ToCanonical(local)
	assert.Equal(t, time.UTC, canonical.Location())
	assert.True(t, canonical.Equal(local))

	back := ToLocal(canonical, loc)
	assert.Equal(t, 9, back.Hour())
	assert.True(t, back.Equal(local))
}

func TestWeekdayOfUsesLocalZone(t *testing.T) {
	loc := Location(DefaultTimezone)

	// 23:30 de segunda em São Paulo = 02:30 de terça em UTC.
	late := time.Date(2026, 3, 2, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Monday, WeekdayOf(late, loc))
	assert.Equal(t, time.Tuesday, late.UTC().Weekday())
	assert.Equal(t, time.Monday, WeekdayOf(late.UTC(), loc))
}

func TestAtWallClock(t *testing.T) {
	loc := Location(DefaultTimezone)
	day := time.Date(2026, 3, 2, 17, 45, 0, 0, loc)

	got, err := AtWallClock(day, "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, loc), got)

	// Ancorada na data LOCAL mesmo quando t chega em UTC de outro dia.
	lateUTC := time.Date(2026, 3, 3, 2, 30, 0, 0, time.UTC) // 23:30 local de 03-02
	got, err = AtWallClock(lateUTC, "09:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, loc), got)

	_, err = AtWallClock(day, "9h30", loc)
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	loc := Location(DefaultTimezone)

	got, err := ParseDateTime("2026-03-02", "14:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, loc), got)

	_, err = ParseDateTime("02/03/2026", "14:30", loc)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	loc := Location(DefaultTimezone)

	got, err := ParseDate("2026-03-02", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
