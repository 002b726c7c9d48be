package utils

import (
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-01-03", " 2024-01-03 ", "2024-01-03T00:00:00Z", "2024-01-03T05:30:00+05:30", "2024-01-03 00:00:00"} {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q) error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseDate("03/01/2024"); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 5, 6, 23, 59, 1, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start of day %v", got)
	}
}
