package recurrence

import "testing"

// Calendar anchors used throughout: in August 2026 the 1st is a Saturday,
// the week 17th-22nd runs Monday-Saturday, the 23rd is a Sunday and the
// last Saturday is the 29th.

func TestWeekEndCutoff(t *testing.T) {
	tests := []struct {
		name string
		date string
		hol  holidaySet
		want string
	}{
		{"Plain Saturday", "2026-08-19", holidays(), "2026-08-22"},
		{"Saturday Holiday Shifts To Friday", "2026-08-19", holidays("2026-08-22"), "2026-08-21"},
		{"Cascading Backward", "2026-08-19", holidays("2026-08-22", "2026-08-21", "2026-08-20"), "2026-08-19"},
		{
			"Fully Blocked Week Falls Forward",
			"2026-08-19",
			holidays("2026-08-17", "2026-08-18", "2026-08-19", "2026-08-20", "2026-08-21", "2026-08-22"),
			"2026-08-24",
		},
		{"From A Sunday", "2026-08-23", holidays(), "2026-08-22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weekEndCutoff(d(tt.date), tt.hol)
			if got.String() != tt.want {
				t.Errorf("weekEndCutoff(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestMonthEndCutoff(t *testing.T) {
	tests := []struct {
		name string
		date string
		hol  holidaySet
		want string
	}{
		{"Plain Last Saturday", "2026-08-10", holidays(), "2026-08-29"},
		{"Holiday Saturday Shifts To Friday", "2026-08-10", holidays("2026-08-29"), "2026-08-28"},
		{
			"Blocked Week Falls Forward Into Next Month",
			"2026-08-10",
			holidays("2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29"),
			"2026-08-31",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := monthEndCutoff(d(tt.date), tt.hol)
			if got.String() != tt.want {
				t.Errorf("monthEndCutoff(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestAddWorkdays(t *testing.T) {
	// Saturdays count as workdays; Sundays and holidays do not.
	if got := addWorkdays(d("2026-08-03"), 5, holidays()); got.String() != "2026-08-08" {
		t.Errorf("plain: got %s, want 2026-08-08", got)
	}
	// 2026-08-09 is a Sunday; a holiday on the 10th pushes one further.
	if got := addWorkdays(d("2026-08-04"), 5, holidays("2026-08-10")); got.String() != "2026-08-11" {
		t.Errorf("with holiday: got %s, want 2026-08-11", got)
	}
	if got := addWorkdays(d("2026-08-03"), 0, holidays()); got.String() != "2026-08-03" {
		t.Errorf("zero: got %s", got)
	}
}

func TestNextPrevWorkday(t *testing.T) {
	// Saturday -> skip Sunday -> Monday.
	if got := nextWorkday(d("2026-08-22"), holidays()); got.String() != "2026-08-24" {
		t.Errorf("nextWorkday = %s, want 2026-08-24", got)
	}
	if got := nextWorkday(d("2026-08-22"), holidays("2026-08-24")); got.String() != "2026-08-25" {
		t.Errorf("nextWorkday over holiday = %s, want 2026-08-25", got)
	}
	// Monday -> back over Sunday -> Saturday.
	if got := prevWorkday(d("2026-08-24"), holidays()); got.String() != "2026-08-22" {
		t.Errorf("prevWorkday = %s, want 2026-08-22", got)
	}
}

func TestWeekdaysAfter(t *testing.T) {
	// (Aug 24, Aug 31]: 25, 26, 27, 28, 29, 31 - the 30th is a Sunday.
	if got := weekdaysAfter(d("2026-08-24"), d("2026-08-31")); got != 6 {
		t.Errorf("weekdaysAfter = %d, want 6", got)
	}
	if got := weekdaysAfter(d("2026-08-31"), d("2026-08-31")); got != 0 {
		t.Errorf("empty range = %d, want 0", got)
	}
}
