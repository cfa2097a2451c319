package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	got := StartOfDay(input)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStartOfMonth(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "mid month",
			input: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			want:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "first day",
			input: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "last day",
			input: time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			want:  time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfMonth(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOf_Idempotent(t *testing.T) {
	d := time.Date(2025, 3, 17, 9, 45, 12, 99, time.UTC)

	if got := StartOfDay(StartOfDay(d)); !got.Equal(StartOfDay(d)) {
		t.Errorf("StartOfDay not idempotent: %v", got)
	}
	if got := StartOfMonth(StartOfMonth(d)); !got.Equal(StartOfMonth(d)) {
		t.Errorf("StartOfMonth not idempotent: %v", got)
	}
	if got := StartOfYear(StartOfYear(d)); !got.Equal(StartOfYear(d)) {
		t.Errorf("StartOfYear not idempotent: %v", got)
	}
}

func TestStartOfMonth_Monotonic(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	for i := 1; i < len(dates); i++ {
		a, b := dates[i-1], dates[i]
		if StartOfMonth(a).After(StartOfMonth(b)) {
			t.Errorf("StartOfMonth not monotonic between %v and %v", a, b)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{name: "january", input: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), want: 31},
		{name: "april", input: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "february non leap", input: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), want: 28},
		{name: "february leap", input: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), want: 29},
		{name: "february century non leap", input: time.Date(2100, 2, 1, 0, 0, 0, 0, time.UTC), want: 28},
		{name: "december", input: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.input); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same instant",
			a:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "same month different days",
			a:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "adjacent months",
			a:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "across year boundary",
			a:    time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "negative direction",
			a:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want: -3,
		},
		{
			name: "ten years",
			a:    time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			want: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthsBetween_Monotonic(t *testing.T) {
	anchor := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC),
	}

	for i := 1; i < len(dates); i++ {
		d1, d2 := dates[i-1], dates[i]
		if MonthsBetween(anchor, d1) > MonthsBetween(anchor, d2) {
			t.Errorf("MonthsBetween not monotonic: %v vs %v", d1, d2)
		}
	}
}

func TestYearsBetween(t *testing.T) {
	a := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	b := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := YearsBetween(a, b); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := YearsBetween(b, a); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
	if got := YearsBetween(a, a); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		n     int
		want  time.Time
	}{
		{
			name:  "simple forward",
			input: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "january 31 clamps to february 28",
			input: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "january 31 clamps to leap february 29",
			input: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "backward across year",
			input: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			n:     -2,
			want:  time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "march 31 back one month clamps to february",
			input: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			n:     -1,
			want:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "zero is identity",
			input: time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC),
			n:     0,
			want:  time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.input, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddYears(t *testing.T) {
	leap := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
	got := AddYears(leap, 1)
	want := time.Date(2025, 2, 28, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddDays(t *testing.T) {
	d := time.Date(2025, 1, 31, 14, 30, 0, 0, time.UTC)
	got := AddDays(d, 1)
	want := time.Date(2025, 2, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArithmetic_OutOfWindowIsNoOp(t *testing.T) {
	late := time.Date(9999, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := AddYears(late, 10); !got.Equal(late) {
		t.Errorf("expected no-op, got %v", got)
	}

	early := time.Date(2, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := AddYears(early, -10); !got.Equal(early) {
		t.Errorf("expected no-op, got %v", got)
	}
}

func TestWeekdayIndex(t *testing.T) {
	// Friday, January 10, 2025
	friday := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		first time.Weekday
		want  int
	}{
		{name: "week starts monday", first: time.Monday, want: 4},
		{name: "week starts sunday", first: time.Sunday, want: 5},
		{name: "week starts friday", first: time.Friday, want: 0},
		{name: "week starts saturday", first: time.Saturday, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayIndex(friday, tt.first); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekdayShort(t *testing.T) {
	if got := WeekdayShort(time.Monday, 0); got != "Mo" {
		t.Errorf("got %q, want %q", got, "Mo")
	}
	if got := WeekdayShort(time.Monday, 6); got != "Su" {
		t.Errorf("got %q, want %q", got, "Su")
	}
	if got := WeekdayShort(time.Sunday, 0); got != "Su" {
		t.Errorf("got %q, want %q", got, "Su")
	}
}

func TestCombineDateAndTime(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	clock := time.Date(2024, 1, 5, 14, 30, 45, 12, time.UTC)

	got := CombineDateAndTime(day, clock)
	want := time.Date(2024, 1, 10, 14, 30, 45, 12, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{
		Start: time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "before", date: time.Date(2025, 1, 9, 23, 59, 0, 0, time.UTC), want: false},
		{name: "start day earlier clock", date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), want: true},
		{name: "inside", date: time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC), want: true},
		{name: "end day later clock", date: time.Date(2025, 1, 15, 23, 0, 0, 0, time.UTC), want: true},
		{name: "after", date: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.date); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{
		Start: time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 15, 1, 0, 0, 0, time.UTC),
	}
	if got := r.Days(); got != 6 {
		t.Errorf("got %d, want 6", got)
	}

	single := SingleDay(time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	if got := single.Days(); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if !single.IsSingle() {
		t.Error("expected single-day range")
	}
}

func TestRange_SameDays(t *testing.T) {
	a := Range{
		Start: time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC),
	}
	b := Range{
		Start: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	if !a.SameDays(b) {
		t.Error("expected same days regardless of clock")
	}

	c := Range{
		Start: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC),
	}
	if a.SameDays(c) {
		t.Error("expected different days")
	}
}

func TestNewRange_SwapsInvertedBounds(t *testing.T) {
	start := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	r := NewRange(start, end)
	if r.Start.After(r.End) {
		t.Errorf("bounds not swapped: %v > %v", r.Start, r.End)
	}
}

func TestClampToRange(t *testing.T) {
	avail := Range{
		Start: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
	}

	t.Run("below clamps to start keeping clock", func(t *testing.T) {
		d := time.Date(2025, 1, 1, 14, 30, 0, 0, time.UTC)
		got := ClampToRange(d, avail)
		want := time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("above clamps to end keeping clock", func(t *testing.T) {
		d := time.Date(2025, 2, 10, 9, 15, 0, 0, time.UTC)
		got := ClampToRange(d, avail)
		want := time.Date(2025, 1, 25, 9, 15, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("inside untouched", func(t *testing.T) {
		d := time.Date(2025, 1, 10, 22, 0, 0, 0, time.UTC)
		if got := ClampToRange(d, avail); !got.Equal(d) {
			t.Errorf("got %v, want %v", got, d)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		d := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)
		once := ClampToRange(d, avail)
		twice := ClampToRange(once, avail)
		if !twice.Equal(once) {
			t.Errorf("clamp not idempotent: %v != %v", twice, once)
		}
	})
}

func TestClampToMonths(t *testing.T) {
	avail := Range{
		Start: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	// January 2nd is outside at day granularity but inside at month
	// granularity, so it stays.
	inMonth := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := ClampToMonths(inMonth, avail); !got.Equal(inMonth) {
		t.Errorf("got %v, want %v", got, inMonth)
	}

	before := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	if got := ClampToMonths(before, avail); !got.Equal(avail.Start) {
		t.Errorf("got %v, want %v", got, avail.Start)
	}

	after := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	if got := ClampToMonths(after, avail); !got.Equal(avail.End) {
		t.Errorf("got %v, want %v", got, avail.End)
	}
}

func TestProjectRangeIntoMonth(t *testing.T) {
	t.Run("same span different month", func(t *testing.T) {
		r := Range{
			Start: time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 20, 18, 0, 0, 0, time.UTC),
		}
		got, ok := ProjectRangeIntoMonth(r, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
		if !ok {
			t.Fatal("expected projection to succeed")
		}
		wantStart := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, 4, 20, 18, 0, 0, 0, time.UTC)
		if !got.Start.Equal(wantStart) || !got.End.Equal(wantEnd) {
			t.Errorf("got [%v, %v], want [%v, %v]", got.Start, got.End, wantStart, wantEnd)
		}
	})

	t.Run("month span preserved", func(t *testing.T) {
		r := Range{
			Start: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		}
		got, ok := ProjectRangeIntoMonth(r, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		if !ok {
			t.Fatal("expected projection to succeed")
		}
		if got.Start.Month() != time.June || got.End.Month() != time.August {
			t.Errorf("month span not preserved: [%v, %v]", got.Start, got.End)
		}
	})

	t.Run("day overflow clamps to month end", func(t *testing.T) {
		r := Range{
			Start: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		}
		got, ok := ProjectRangeIntoMonth(r, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
		if !ok {
			t.Fatal("expected projection to succeed")
		}
		if got.End.Day() != 28 {
			t.Errorf("got end day %d, want 28", got.End.Day())
		}
	})

	t.Run("collapse of positive range fails", func(t *testing.T) {
		// Both days clamp to February 28th, collapsing a two-day range.
		r := Range{
			Start: time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		}
		if _, ok := ProjectRangeIntoMonth(r, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)); ok {
			t.Error("expected projection to fail")
		}
	})

	t.Run("single day stays single", func(t *testing.T) {
		r := SingleDay(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
		got, ok := ProjectRangeIntoMonth(r, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
		if !ok {
			t.Fatal("expected projection to succeed")
		}
		if !got.IsSingle() || got.Start.Day() != 28 {
			t.Errorf("got [%v, %v]", got.Start, got.End)
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := StartOfDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestNewDateRange_Errors(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{
			name:      "invalid start date format",
			startDate: "01-15-2025",
			endDate:   "",
			wantErr:   ErrInvalidDateFormat,
		},
		{
			name:      "invalid end date format",
			startDate: "2025-01-15",
			endDate:   "01-20-2025",
			wantErr:   ErrInvalidDateFormat,
		},
		{
			name:      "end date before start date",
			startDate: "2025-01-20",
			endDate:   "2025-01-15",
			wantErr:   ErrEndDateBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(tt.startDate, tt.endDate)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Reference date: Friday, January 10, 2025
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		relativeTo time.Time
		want       time.Time
		wantErr    error
	}{
		{
			name:       "empty returns today",
			input:      "",
			relativeTo: friday,
			want:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "today keyword",
			input:      "today",
			relativeTo: friday,
			want:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "tomorrow from friday",
			input:      "tomorrow",
			relativeTo: friday,
			want:       time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "yesterday from friday",
			input:      "yesterday",
			relativeTo: friday,
			want:       time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "monday from friday",
			input:      "monday",
			relativeTo: friday,
			want:       time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "friday from friday returns next friday",
			input:      "friday",
			relativeTo: friday,
			want:       time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "next-monday from friday",
			input:      "next-monday",
			relativeTo: friday,
			want:       time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "last-monday from friday",
			input:      "last-monday",
			relativeTo: friday,
			want:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "last-friday from friday is a week back",
			input:      "last-friday",
			relativeTo: friday,
			want:       time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "next-week from friday",
			input:      "next-week",
			relativeTo: friday,
			want:       time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "last-week from friday",
			input:      "last-week",
			relativeTo: friday,
			want:       time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "plus days offset",
			input:      "+3d",
			relativeTo: friday,
			want:       time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "minus weeks offset",
			input:      "-2w",
			relativeTo: friday,
			want:       time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "plus months offset",
			input:      "+1m",
			relativeTo: friday,
			want:       time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "minus years offset",
			input:      "-1y",
			relativeTo: friday,
			want:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "absolute past date allowed",
			input:      "2020-01-01",
			relativeTo: friday,
			want:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "uppercase with whitespace",
			input:      "  MONDAY  ",
			relativeTo: friday,
			want:       time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, tt.relativeTo)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRelativeDate_Errors(t *testing.T) {
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid format US style", input: "01-10-2025"},
		{name: "invalid format slash", input: "10/01/2025"},
		{name: "typo weekday", input: "mondya"},
		{name: "typo next-weekday", input: "next-mondya"},
		{name: "typo last-weekday", input: "last-mondya"},
		{name: "random text", input: "foo"},
		{name: "next- without weekday", input: "next-"},
		{name: "bare offset unit", input: "+d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRelativeDate(tt.input, friday)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
			}
		})
	}
}

func TestAfterDay(t *testing.T) {
	utc := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	madrid := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{name: "next day", a: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), b: utc, want: true},
		{name: "same day", a: utc.Add(5 * time.Hour), b: utc, want: false},
		{name: "previous day", a: time.Date(2024, 3, 8, 23, 0, 0, 0, time.UTC), b: utc, want: false},
		// Same calendar day in another zone is not after, even though the
		// instant is earlier than UTC midnight.
		{name: "same day other zone", a: time.Date(2024, 3, 9, 0, 0, 0, 0, madrid), b: utc, want: false},
		{name: "next day other zone", a: time.Date(2024, 3, 10, 0, 0, 0, 0, madrid), b: utc, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AfterDay(tt.a, tt.b); got != tt.want {
				t.Errorf("AfterDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRangeContains_CrossLocation(t *testing.T) {
	east := time.FixedZone("UTC+12", 12*3600)
	r := Range{
		Start: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	// Midnight March 9 in UTC+12 is still March 8 in UTC terms as an
	// instant, but the calendar day is in range.
	if !r.Contains(time.Date(2024, 3, 9, 0, 0, 0, 0, east)) {
		t.Error("Contains(March 9 in UTC+12) = false")
	}
	if r.Contains(time.Date(2024, 3, 12, 1, 0, 0, 0, east)) {
		t.Error("Contains(March 12 in UTC+12) = true")
	}
}
