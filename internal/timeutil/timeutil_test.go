package timeutil

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
	}

	for _, tc := range cases {
		got := FormatTime(tc.seconds)
		if got != tc.expected {
			t.Errorf(
				"FormatTime(%d): expected %q, but got %q",
				tc.seconds,
				tc.expected,
				got,
			)
		}
	}
}

func TestFormatWeeklyTime(t *testing.T) {
	cases := []struct {
		seconds  int
		expected string
	}{
		{0, "0h 00min"},
		{59, "0h 00min"},
		{60, "0h 01min"},
		{3599, "0h 59min"},
		{3659, "1h 00min"},
		{3660, "1h 01min"},
		{7260, "2h 01min"},
	}

	for _, tc := range cases {
		got := FormatWeeklyTime(tc.seconds)
		if got != tc.expected {
			t.Errorf(
				"FormatWeeklyTime(%d): expected %q, but got %q",
				tc.seconds,
				tc.expected,
				got,
			)
		}
	}
}

func TestDayLabel(t *testing.T) {
	// 2024-06-12 is a Wednesday
	now := time.Date(2024, time.June, 12, 15, 30, 0, 0, time.Local)

	cases := []struct {
		daysAgo  int
		expected string
	}{
		{0, "Today"},
		{1, "Yesterday"},
		{2, "Monday"},
		{3, "Sunday"},
		{4, "Saturday"},
		{5, "Friday"},
		{6, "Thursday"},
	}

	for _, tc := range cases {
		got := DayLabel(tc.daysAgo, now)
		if got != tc.expected {
			t.Errorf(
				"DayLabel(%d): expected %q, but got %q",
				tc.daysAgo,
				tc.expected,
				got,
			)
		}
	}
}

func TestRoundToStart(t *testing.T) {
	in := time.Date(2024, time.June, 12, 15, 30, 45, 999, time.Local)
	got := RoundToStart(in)

	expected := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.Local)
	if !got.Equal(expected) {
		t.Errorf("expected %v, but got %v", expected, got)
	}
}
