package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSlashFormat(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	got := Resolve("2025/07/30 07:50:00", now)
	require.NotNil(t, got)

	// JST civil fields resolve 9 hours earlier than their naive UTC reading.
	naiveUTC := time.Date(2025, 7, 30, 7, 50, 0, 0, time.UTC)
	assert.True(t, got.Equal(naiveUTC.Add(-9*time.Hour)))
}

func TestResolveCompactMatchesSlash(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	slash := Resolve("2025/07/30 07:50:00", now)
	compact := Resolve("202507300750", now)
	require.NotNil(t, slash)
	require.NotNil(t, compact)
	assert.True(t, slash.Equal(*compact))
}

func TestResolveUnrecognized(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "garbage", input: "unparseable"},
		{name: "slash without time", input: "2025/07/30"},
		{name: "wrong length numeric", input: "20250730075"},
		{name: "non numeric compact", input: "20250730ab50"},
		{name: "non numeric date part", input: "20xx/07/30 07:50:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Resolve(tt.input, now))
		})
	}
}

func TestResolveDayRollover(t *testing.T) {
	// Fetched at 01:00 JST on Jul 31; feed row still shows Jul 29 with an
	// early-morning clock. More than 24h in the past, so it means Jul 30.
	now := time.Date(2025, 7, 31, 1, 0, 0, 0, JST)

	got := Resolve("2025/07/29 00:30:00", now)
	require.NotNil(t, got)
	want := time.Date(2025, 7, 30, 0, 30, 0, 0, JST)
	assert.True(t, got.Equal(want))
}

func TestResolveDayRolloverNeedsEarlyMorningHour(t *testing.T) {
	now := time.Date(2025, 7, 31, 12, 0, 0, 0, JST)

	// More than 24h in the past but a daytime clock: taken at face value.
	got := Resolve("2025/07/29 10:30:00", now)
	require.NotNil(t, got)
	want := time.Date(2025, 7, 29, 10, 30, 0, 0, JST)
	assert.True(t, got.Equal(want))
}

func TestResolveDayRolloverNeedsFullDayGap(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	// In the past, but by less than 24h: taken at face value.
	got := Resolve("2025/07/30 01:30:00", now)
	require.NotNil(t, got)
	want := time.Date(2025, 7, 30, 1, 30, 0, 0, JST)
	assert.True(t, got.Equal(want))
}

func TestResolveClockImpliedDate(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	got := ResolveClock("07:50", "", now)
	require.NotNil(t, got)
	want := time.Date(2025, 7, 30, 7, 50, 0, 0, JST)
	assert.True(t, got.Equal(want))
}

func TestResolveClockRollsOverWhenBeforeNow(t *testing.T) {
	now := time.Date(2025, 7, 30, 23, 30, 0, 0, JST)

	// 00:15 on today's date already passed, so it means tomorrow.
	got := ResolveClock("00:15", "", now)
	require.NotNil(t, got)

	naive := time.Date(2025, 7, 30, 0, 15, 0, 0, JST)
	assert.True(t, got.Equal(naive.Add(24*time.Hour)))
}

func TestResolveClockExplicitDate(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{name: "dashed", date: "2025-07-31", want: time.Date(2025, 7, 31, 7, 50, 0, 0, JST)},
		{name: "slashed", date: "2025/07/31", want: time.Date(2025, 7, 31, 7, 50, 0, 0, JST)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveClock("07:50", tt.date, now)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestResolveClockUnrecognized(t *testing.T) {
	now := time.Date(2025, 7, 30, 7, 0, 0, 0, JST)

	assert.Nil(t, ResolveClock("", "", now))
	assert.Nil(t, ResolveClock("0750", "", now))
	assert.Nil(t, ResolveClock("ab:cd", "", now))
}

func TestClockLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full timestamp", input: "2025/07/30 07:50:00", want: "07:50"},
		{name: "clock with seconds", input: "07:50:00", want: "07:50"},
		{name: "bare clock", input: "07:50", want: "07:50"},
		{name: "compact has no clock portion", input: "202507300750", want: ""},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockLabel(tt.input))
		})
	}
}
