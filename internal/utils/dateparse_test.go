package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKeyFormats(t *testing.T) {
	got, err := ParseDateKey("2026-03-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", got)

	got, err = ParseDateKey("2 Mar 2026", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", got)

	_, err = ParseDateKey("soonish", time.UTC)
	assert.Error(t, err)
}

func TestParseDateKeyRelative(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	got, err := ParseDateKey("today", time.Local)
	require.NoError(t, err)
	assert.Equal(t, today, got)

	got, err = ParseDateKey("", time.Local)
	require.NoError(t, err)
	assert.Equal(t, today, got)
}

func TestParseClock(t *testing.T) {
	for input, want := range map[string]int{
		"09:30": 570,
		"9":     540,
		"24:00": 1440,
		"00:00": 0,
	} {
		got, err := ParseClock(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseClock("25:00")
	assert.Error(t, err)
}
