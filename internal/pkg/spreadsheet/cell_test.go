package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_ISOText(t *testing.T) {
	got, ok := ParseDate("2023-10-02")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_DisplayLayouts(t *testing.T) {
	for _, cell := range []string{"2023/10/02", "10-02-23", "10/2/23", "10/02/2023"} {
		got, ok := ParseDate(cell)
		require.True(t, ok, "cell %q", cell)
		assert.Equal(t, time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC), got, "cell %q", cell)
	}
}

func TestParseDate_NumericSerial(t *testing.T) {
	// 45200 days past the 1899-12-30 epoch is 2023-10-01.
	got, ok := ParseDate("45200")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_PlainNumberIsNotASerial(t *testing.T) {
	_, ok := ParseDate("2023")
	assert.False(t, ok)
}

func TestParseDate_GarbageAndEmpty(t *testing.T) {
	for _, cell := range []string{"", "   ", "not a date", "??-??-??"} {
		_, ok := ParseDate(cell)
		assert.False(t, ok, "cell %q", cell)
	}
}

func TestParseTimeOfDay_Text(t *testing.T) {
	base := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)

	got, ok := ParseTimeOfDay(base, "10:30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 2, 10, 30, 0, 0, time.UTC), got)

	got, ok = ParseTimeOfDay(base, "18:30:15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 2, 18, 30, 15, 0, time.UTC), got)
}

func TestParseTimeOfDay_FractionOfDay(t *testing.T) {
	base := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)

	got, ok := ParseTimeOfDay(base, "0.75")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 2, 18, 0, 0, 0, time.UTC), got)

	got, ok = ParseTimeOfDay(base, "0.5")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 2, 12, 0, 0, 0, time.UTC), got)
}

func TestParseTimeOfDay_UnparsableComponentsDefaultToZero(t *testing.T) {
	base := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)

	got, ok := ParseTimeOfDay(base, "10:")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.October, 2, 10, 0, 0, 0, time.UTC), got)

	got, ok = ParseTimeOfDay(base, "morning")
	require.True(t, ok)
	assert.Equal(t, base, got)
}

func TestParseTimeOfDay_MissingInputs(t *testing.T) {
	base := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)

	_, ok := ParseTimeOfDay(base, "")
	assert.False(t, ok)

	_, ok = ParseTimeOfDay(time.Time{}, "10:00")
	assert.False(t, ok)
}
