package timeutil

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 1, 4, 9, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2026-01-04" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestParseEventTimeMinutePrecision(t *testing.T) {
	got, err := ParseEventTime("2026-01-04T23:30Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 1, 4, 23, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseEventTimeRFC3339(t *testing.T) {
	got, err := ParseEventTime("2026-01-04T23:30:15Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Second() != 15 {
		t.Fatalf("expected seconds preserved, got %v", got)
	}
}

func TestParseEventTimeInvalid(t *testing.T) {
	if _, err := ParseEventTime("not-a-time"); err == nil {
		t.Fatal("expected error")
	}
}
