package dateutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2025-03-09")
	if !d.Valid() {
		t.Fatal("expected valid date")
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 9 {
		t.Errorf("got %v, want 2025-03-09", d)
	}
}

func TestParseDate_Malformed(t *testing.T) {
	cases := []string{"", "not-a-date", "2025-13-40", "03/09/2025", "2025-3-9"}
	for _, s := range cases {
		if d := ParseDate(s); d.Valid() {
			t.Errorf("ParseDate(%q) = %v, want invalid", s, d)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.December, 31)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-12-31"` {
		t.Errorf("got %s, want \"2024-12-31\"", data)
	}

	var restored Date
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !restored.Equal(d) {
		t.Errorf("got %v, want %v", restored, d)
	}
}

func TestDateJSON_NullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `"garbage"`} {
		var d Date
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if d.Valid() {
			t.Errorf("unmarshal %s: got valid date %v", raw, d)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		from, to Date
		want     int
	}{
		{NewDate(2025, time.June, 1), NewDate(2025, time.June, 1), 0},
		{NewDate(2025, time.June, 1), NewDate(2025, time.June, 10), 9},
		{NewDate(2025, time.June, 10), NewDate(2025, time.June, 1), -9},
		{NewDate(2025, time.February, 28), NewDate(2025, time.March, 1), 1},
		{NewDate(2024, time.February, 28), NewDate(2024, time.March, 1), 2}, // leap year
		{NewDate(2024, time.December, 31), NewDate(2025, time.January, 1), 1},
	}
	for _, tt := range tests {
		if got := DaysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDaysBetween_InvalidIsZero(t *testing.T) {
	if got := DaysBetween(Date{}, NewDate(2025, time.June, 1)); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestAddDays(t *testing.T) {
	d := NewDate(2025, time.June, 28).AddDays(5)
	if !d.Equal(NewDate(2025, time.July, 3)) {
		t.Errorf("got %v, want 2025-07-03", d)
	}
	if got := NewDate(2025, time.June, 5).AddDays(-10); !got.Equal(NewDate(2025, time.May, 26)) {
		t.Errorf("got %v, want 2025-05-26", got)
	}
	if (Date{}).AddDays(3).Valid() {
		t.Error("invalid date must stay invalid")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// June 1, 2025 is a Sunday; September 1, 2025 is a Monday.
	if got := FirstWeekday(2025, time.June); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := FirstWeekday(2025, time.September); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		year, month int
		wantYear    int
		wantMonth   time.Month
	}{
		{2025, 13, 2026, time.January},
		{2025, 0, 2024, time.December},
		{2025, -1, 2024, time.November},
		{2025, 6, 2025, time.June},
		{2025, 25, 2027, time.January},
	}
	for _, tt := range tests {
		y, m := NormalizeMonth(tt.year, tt.month)
		if y != tt.wantYear || m != tt.wantMonth {
			t.Errorf("NormalizeMonth(%d, %d) = (%d, %v), want (%d, %v)",
				tt.year, tt.month, y, m, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestAddMonths(t *testing.T) {
	y, m := AddMonths(2025, time.December, 1)
	if y != 2026 || m != time.January {
		t.Errorf("got (%d, %v), want (2026, January)", y, m)
	}
	y, m = AddMonths(2025, time.January, -1)
	if y != 2024 || m != time.December {
		t.Errorf("got (%d, %v), want (2024, December)", y, m)
	}
}

func TestDayOffset(t *testing.T) {
	if got, ok := DayOffset(2025, time.June, NewDate(2025, time.June, 1)); !ok || got != 0 {
		t.Errorf("got (%d, %v), want (0, true)", got, ok)
	}
	if got, ok := DayOffset(2025, time.June, NewDate(2025, time.June, 15)); !ok || got != 14 {
		t.Errorf("got (%d, %v), want (14, true)", got, ok)
	}
	if got, ok := DayOffset(2025, time.June, NewDate(2025, time.May, 30)); !ok || got != -2 {
		t.Errorf("got (%d, %v), want (-2, true)", got, ok)
	}
	if got, ok := DayOffset(2025, time.June, NewDate(2025, time.July, 2)); !ok || got != 31 {
		t.Errorf("got (%d, %v), want (31, true)", got, ok)
	}
}

func TestDayOffset_InvalidDateUnplaced(t *testing.T) {
	if _, ok := DayOffset(2025, time.June, Date{}); ok {
		t.Error("expected invalid date to be unplaced")
	}
}
