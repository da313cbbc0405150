package utils

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	got := DateOf(time.Date(2024, time.January, 15, 23, 59, 0, 0, time.UTC))
	if got != "2024-01-15" {
		t.Errorf("DateOf() = %q, want %q", got, "2024-01-15")
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	if day.Year() != 2024 || day.Month() != time.January || day.Day() != 15 {
		t.Errorf("parsed wrong date: %v", day)
	}

	if _, err := ParseDate("01/15/2024"); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-01-15") {
		t.Error("expected valid date")
	}
	if ValidDate("2024-1-15") {
		t.Error("expected unpadded date to be invalid")
	}
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2024-01")
	if err != nil {
		t.Fatalf("failed to parse month: %v", err)
	}
	if year != 2024 || month != time.January {
		t.Errorf("ParseMonth() = %d %v, want 2024 January", year, month)
	}

	if _, _, err := ParseMonth("Jan 2024"); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestTodayMatchesNow(t *testing.T) {
	want := time.Now().Format("2006-01-02")
	if got := Today(); got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}
