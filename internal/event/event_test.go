package event

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNew(t *testing.T) {
	e, err := New("Team offsite", "", "2026-03-09", "2026-03-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Calendar != DefaultCalendar {
		t.Errorf("Calendar = %q, want %q", e.Calendar, DefaultCalendar)
	}
	if e.Days() != 3 {
		t.Errorf("Days() = %d, want 3", e.Days())
	}
	if !e.IsMultiDay() {
		t.Error("IsMultiDay() = false for a three-day event")
	}
	if !e.On(day(2026, time.March, 10)) {
		t.Error("On(March 10) = false inside the event")
	}
	if e.On(day(2026, time.March, 12)) {
		t.Error("On(March 12) = true outside the event")
	}
}

func TestNew_SingleDay(t *testing.T) {
	e, err := New("Dentist", "personal", "2026-03-09", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.IsMultiDay() {
		t.Error("IsMultiDay() = true for a one-day event")
	}
	if e.Days() != 1 {
		t.Errorf("Days() = %d, want 1", e.Days())
	}
	if e.Calendar != "personal" {
		t.Errorf("Calendar = %q, want personal", e.Calendar)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		start   string
		end     string
		wantErr error
	}{
		{name: "empty title", title: "", start: "2026-03-09", end: "", wantErr: ErrEmptyTitle},
		{name: "bad start", title: "x", start: "03/09/2026", end: "", wantErr: dateutil.ErrInvalidDateFormat},
		{name: "end before start", title: "x", start: "2026-03-09", end: "2026-03-01", wantErr: dateutil.ErrEndDateBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.title, "", tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIndexGroupsByDay(t *testing.T) {
	offsite, _ := New("Offsite", "", "2026-03-09", "2026-03-11")
	dentist, _ := New("Dentist", "", "2026-03-10", "")
	elsewhere, _ := New("Far away", "", "2026-07-01", "")

	ix := NewIndex([]*Event{offsite, dentist, elsewhere}, []time.Time{day(2026, time.March, 1)})

	if got := len(ix.EventsOn(day(2026, time.March, 9))); got != 1 {
		t.Errorf("events on March 9 = %d, want 1", got)
	}
	if got := len(ix.EventsOn(day(2026, time.March, 10))); got != 2 {
		t.Errorf("events on March 10 = %d, want 2", got)
	}
	if got := ix.EventsOn(day(2026, time.March, 12)); got != nil {
		t.Errorf("events on March 12 = %v, want none", got)
	}
	// July was not loaded: the event is not indexed.
	if got := ix.EventsOn(day(2026, time.July, 1)); got != nil {
		t.Errorf("events on July 1 = %v, want none", got)
	}

	if !ix.Covers(day(2026, time.March, 25)) {
		t.Error("Covers(March) = false")
	}
	if ix.Covers(day(2026, time.April, 1)) {
		t.Error("Covers(April) = true for an unloaded month")
	}
}

func TestIndexClampsSpanningEvents(t *testing.T) {
	long, _ := New("Sabbatical", "", "2026-01-15", "2026-12-15")
	months := []time.Time{day(2026, time.March, 1), day(2026, time.April, 1)}

	ix := NewIndex([]*Event{long}, months)

	// Expanded only across the loaded months, not the whole event.
	if got := ix.Len(); got != 31+30 {
		t.Errorf("indexed days = %d, want 61", got)
	}
	if len(ix.EventsOn(day(2026, time.March, 1))) != 1 {
		t.Error("March 1 not covered by the spanning event")
	}
	if len(ix.EventsOn(day(2026, time.February, 20))) != 0 {
		t.Error("February indexed outside the loaded months")
	}
}

func TestIndexEmpty(t *testing.T) {
	ix := NewIndex(nil, nil)
	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
	if ix.EventsOn(day(2026, time.March, 1)) != nil {
		t.Error("empty index returned events")
	}
	if ix.Covers(day(2026, time.March, 1)) {
		t.Error("empty index covers a month")
	}
}

func TestStoreDelegate(t *testing.T) {
	offsite, _ := New("Offsite", "", "2026-03-09", "2026-03-11")
	offsite.Busy = true
	party, _ := New("Party", "", "2026-03-20", "")
	party.Color = "#ff0000"
	dinner, _ := New("Dinner", "", "2026-03-20", "")

	d := NewStoreDelegate()
	d.SetIndex(NewIndex([]*Event{offsite, party, dinner}, []time.Time{day(2026, time.March, 1)}))

	if d.IsDateSelectable(day(2026, time.March, 10)) {
		t.Error("busy day is selectable")
	}
	if !d.IsDateSelectable(day(2026, time.March, 20)) {
		t.Error("non-busy day is not selectable")
	}

	r, ok := d.ContainedRange(day(2026, time.March, 10))
	if !ok {
		t.Fatal("multi-day event produced no contained range")
	}
	if !r.SameDays(offsite.Range()) {
		t.Errorf("contained range = [%v, %v], want the offsite", r.Start, r.End)
	}
	if _, ok := d.ContainedRange(day(2026, time.March, 20)); ok {
		t.Error("single-day events produced a contained range")
	}

	if got := d.Annotation(day(2026, time.March, 9)); got != "•" {
		t.Errorf("Annotation(single) = %q, want dot", got)
	}
	if got := d.Annotation(day(2026, time.March, 20)); got != "2" {
		t.Errorf("Annotation(two events) = %q, want 2", got)
	}
	if got := d.Annotation(day(2026, time.March, 25)); got != "" {
		t.Errorf("Annotation(none) = %q, want empty", got)
	}

	bg, _ := d.Colors(day(2026, time.March, 20))
	if bg != "#ff0000" {
		t.Errorf("Colors background = %q, want #ff0000", bg)
	}
}

func TestStoreDelegateEmpty(t *testing.T) {
	d := NewStoreDelegate()

	if !d.IsDateSelectable(day(2026, time.March, 10)) {
		t.Error("empty delegate vetoed a day")
	}
	if _, ok := d.ContainedRange(day(2026, time.March, 10)); ok {
		t.Error("empty delegate returned a contained range")
	}
	if got := d.Annotation(day(2026, time.March, 10)); got != "" {
		t.Errorf("Annotation = %q, want empty", got)
	}
}
