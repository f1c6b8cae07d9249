package handlers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"1990-06-15", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"1990-06-15T10:30:00Z", time.Date(1990, 6, 15, 10, 30, 0, 0, time.UTC), true},
		{"15/06/1990", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := parseDate(tc.in)
		if tc.ok && (err != nil || !got.Equal(tc.want)) {
			t.Errorf("parseDate(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("parseDate(%q) succeeded, want error", tc.in)
		}
	}
}
