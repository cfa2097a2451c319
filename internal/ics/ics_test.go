package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fixture(eventLines ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//almanaque//test//EN",
	}
	lines = append(lines, eventLines...)
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

func vevent(props ...string) []string {
	lines := []string{"BEGIN:VEVENT"}
	lines = append(lines, props...)
	return append(lines, "END:VEVENT")
}

var march2026 = dateutil.Range{Start: day(2026, time.March, 1), End: day(2026, time.March, 31)}

func TestParseSingleEvent(t *testing.T) {
	body := fixture(vevent(
		"UID:abc-123",
		"SUMMARY:Dentist",
		"DTSTART:20260305T190000Z",
		"DTEND:20260305T200000Z",
	)...)

	events, skipped, err := Parse(strings.NewReader(body), "health", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Title != "Dentist" {
		t.Errorf("Title = %q, want %q", e.Title, "Dentist")
	}
	if e.UID != "abc-123" {
		t.Errorf("UID = %q, want %q", e.UID, "abc-123")
	}
	if e.Calendar != "health" {
		t.Errorf("Calendar = %q, want %q", e.Calendar, "health")
	}
	if !dateutil.SameDay(e.StartDate, day(2026, time.March, 5)) {
		t.Errorf("StartDate = %v, want 2026-03-05", e.StartDate)
	}
	if !e.Range().IsSingle() {
		t.Errorf("expected a single-day event, got %v..%v", e.StartDate, e.EndDate)
	}
	if e.Busy {
		t.Error("timed event should not be busy")
	}
}

func TestParseAllDayEndIsExclusive(t *testing.T) {
	body := fixture(vevent(
		"UID:offsite-1",
		"SUMMARY:Offsite",
		"DTSTART;VALUE=DATE:20260305",
		"DTEND;VALUE=DATE:20260308",
	)...)

	events, _, err := Parse(strings.NewReader(body), "work", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if !dateutil.SameDay(e.StartDate, day(2026, time.March, 5)) {
		t.Errorf("StartDate = %v, want 2026-03-05", e.StartDate)
	}
	if !dateutil.SameDay(e.EndDate, day(2026, time.March, 7)) {
		t.Errorf("EndDate = %v, want 2026-03-07", e.EndDate)
	}
	if e.Days() != 3 {
		t.Errorf("Days() = %d, want 3", e.Days())
	}
}

func TestParseMidnightEndStaysOnPreviousDay(t *testing.T) {
	body := fixture(vevent(
		"UID:late-1",
		"SUMMARY:Late show",
		"DTSTART:20260305T200000Z",
		"DTEND:20260306T000000Z",
	)...)

	events, _, err := Parse(strings.NewReader(body), "", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !dateutil.SameDay(events[0].EndDate, day(2026, time.March, 5)) {
		t.Errorf("EndDate = %v, want 2026-03-05", events[0].EndDate)
	}
}

func TestParseBusy(t *testing.T) {
	tests := []struct {
		name  string
		props []string
		busy  bool
	}{
		{
			name: "opaque all-day blocks",
			props: []string{
				"UID:ooo-1",
				"SUMMARY:Out of office",
				"DTSTART;VALUE=DATE:20260310",
				"TRANSP:OPAQUE",
			},
			busy: true,
		},
		{
			name: "transparent all-day does not",
			props: []string{
				"UID:bday-1",
				"SUMMARY:Birthday",
				"DTSTART;VALUE=DATE:20260310",
				"TRANSP:TRANSPARENT",
			},
			busy: false,
		},
		{
			name: "opaque timed meeting does not",
			props: []string{
				"UID:standup-1",
				"SUMMARY:Standup",
				"DTSTART:20260310T090000Z",
				"DTEND:20260310T091500Z",
				"TRANSP:OPAQUE",
			},
			busy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, _, err := Parse(strings.NewReader(fixture(vevent(tt.props...)...)), "", march2026)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			if events[0].Busy != tt.busy {
				t.Errorf("Busy = %v, want %v", events[0].Busy, tt.busy)
			}
		})
	}
}

func TestParseRecurringWithExdate(t *testing.T) {
	body := fixture(vevent(
		"UID:weekly-1",
		"SUMMARY:Team sync",
		"DTSTART:20260302T090000Z",
		"DTEND:20260302T093000Z",
		"RRULE:FREQ=WEEKLY;COUNT=4",
		"EXDATE:20260316T090000Z",
	)...)

	events, skipped, err := Parse(strings.NewReader(body), "work", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}

	want := []time.Time{
		day(2026, time.March, 2),
		day(2026, time.March, 9),
		day(2026, time.March, 23),
	}
	if len(events) != len(want) {
		t.Fatalf("got %d occurrences, want %d", len(events), len(want))
	}
	for i, w := range want {
		if !dateutil.SameDay(events[i].StartDate, w) {
			t.Errorf("occurrence %d = %v, want %v", i, events[i].StartDate, w)
		}
		if events[i].UID != "weekly-1" {
			t.Errorf("occurrence %d UID = %q, want weekly-1", i, events[i].UID)
		}
	}
}

func TestParseRecurringBoundedByHorizon(t *testing.T) {
	body := fixture(vevent(
		"UID:daily-1",
		"SUMMARY:Practice",
		"DTSTART:20260220T090000Z",
		"RRULE:FREQ=DAILY",
	)...)

	horizon := dateutil.Range{Start: day(2026, time.March, 1), End: day(2026, time.March, 10)}
	events, _, err := Parse(strings.NewReader(body), "", horizon)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(events) != 10 {
		t.Fatalf("got %d occurrences, want 10", len(events))
	}
	if !dateutil.SameDay(events[0].StartDate, day(2026, time.March, 1)) {
		t.Errorf("first occurrence = %v, want 2026-03-01", events[0].StartDate)
	}
	if !dateutil.SameDay(events[9].StartDate, day(2026, time.March, 10)) {
		t.Errorf("last occurrence = %v, want 2026-03-10", events[9].StartDate)
	}
}

func TestParseRecurringKeepsSpan(t *testing.T) {
	body := fixture(vevent(
		"UID:retreat-1",
		"SUMMARY:Retreat",
		"DTSTART;VALUE=DATE:20260306",
		"DTEND;VALUE=DATE:20260308",
		"RRULE:FREQ=WEEKLY;COUNT=2",
	)...)

	events, _, err := Parse(strings.NewReader(body), "", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d occurrences, want 2", len(events))
	}
	for i, e := range events {
		if e.Days() != 2 {
			t.Errorf("occurrence %d spans %d days, want 2", i, e.Days())
		}
	}
	if !dateutil.SameDay(events[1].StartDate, day(2026, time.March, 13)) {
		t.Errorf("second occurrence = %v, want 2026-03-13", events[1].StartDate)
	}
}

func TestParseUntitled(t *testing.T) {
	body := fixture(vevent(
		"UID:blank-1",
		"DTSTART:20260305T190000Z",
	)...)

	events, _, err := Parse(strings.NewReader(body), "", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Title != "(untitled)" {
		t.Errorf("Title = %q, want %q", events[0].Title, "(untitled)")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  string
	}{
		{"hex kept", "COLOR:#ff5555", "#ff5555"},
		{"css name dropped", "COLOR:turquoise", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fixture(vevent(
				"UID:c-1",
				"SUMMARY:Colored",
				"DTSTART;VALUE=DATE:20260305",
				tt.color,
			)...)
			events, _, err := Parse(strings.NewReader(body), "", march2026)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			if events[0].Color != tt.want {
				t.Errorf("Color = %q, want %q", events[0].Color, tt.want)
			}
		})
	}
}

func TestParseSkipsUnparseableEvent(t *testing.T) {
	body := fixture(append(
		vevent(
			"UID:ok-1",
			"SUMMARY:Keeper",
			"DTSTART:20260305T190000Z",
		),
		vevent(
			"UID:broken-1",
			"SUMMARY:No start",
		)...,
	)...)

	events, skipped, err := Parse(strings.NewReader(body), "", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Title != "Keeper" {
		t.Errorf("Title = %q, want %q", events[0].Title, "Keeper")
	}
}

func TestParseDefaultCalendar(t *testing.T) {
	body := fixture(vevent(
		"UID:d-1",
		"SUMMARY:Plain",
		"DTSTART;VALUE=DATE:20260305",
	)...)

	events, _, err := Parse(strings.NewReader(body), "", march2026)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(events) != 1 || events[0].Calendar != event.DefaultCalendar {
		t.Fatalf("Calendar = %q, want %q", events[0].Calendar, event.DefaultCalendar)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, _, err := Parse(strings.NewReader("this is not a calendar"), "", march2026); err == nil {
		t.Fatal("expected an error for a non-ICS stream")
	}
}
