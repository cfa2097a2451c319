package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/almanaque/internal/config"
	"github.com/javiermolinar/almanaque/internal/event"
)

type fakeRepo struct {
	eventsBetween func(start, end time.Time) ([]*event.Event, error)
}

func (f fakeRepo) CreateEvent(ctx context.Context, e *event.Event) error {
	return errors.New("not implemented")
}

func (f fakeRepo) CreateEvents(ctx context.Context, events []*event.Event) error {
	return errors.New("not implemented")
}

func (f fakeRepo) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	return nil, errors.New("not implemented")
}

func (f fakeRepo) DeleteEvent(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}

func (f fakeRepo) ListEventsBetween(ctx context.Context, start, end time.Time) ([]*event.Event, error) {
	if f.eventsBetween == nil {
		return nil, errors.New("not implemented")
	}
	return f.eventsBetween(start, end)
}

func (f fakeRepo) ListAllEvents(ctx context.Context) ([]*event.Event, error) {
	return nil, errors.New("not implemented")
}

func (f fakeRepo) DeleteCalendar(ctx context.Context, calendar string) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f fakeRepo) Close() error { return nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestLoadIndexSpansRequestedMonths(t *testing.T) {
	var gotStart, gotEnd time.Time
	repo := fakeRepo{
		eventsBetween: func(start, end time.Time) ([]*event.Event, error) {
			gotStart, gotEnd = start, end
			return []*event.Event{
				{ID: 1, Title: "standup", StartDate: day(2026, time.March, 5), EndDate: day(2026, time.March, 5)},
			}, nil
		},
	}

	months := []time.Time{day(2026, time.March, 1), day(2026, time.February, 1), day(2026, time.April, 1)}
	msg := LoadIndex(repo, months)()

	loaded, ok := msg.(IndexLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want IndexLoadedMsg", msg)
	}
	if want := day(2026, time.February, 1); !gotStart.Equal(want) {
		t.Fatalf("query start = %v, want %v", gotStart, want)
	}
	if want := day(2026, time.April, 30); !gotEnd.Equal(want) {
		t.Fatalf("query end = %v, want %v", gotEnd, want)
	}
	if got := loaded.Index.Len(); got != 1 {
		t.Fatalf("indexed days = %d, want 1", got)
	}
	if !loaded.Index.Covers(day(2026, time.February, 14)) {
		t.Fatal("index should cover February")
	}
}

func TestLoadIndexNilRepoYieldsEmptyIndex(t *testing.T) {
	msg := LoadIndex(nil, []time.Time{day(2026, time.March, 1)})()

	loaded, ok := msg.(IndexLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want IndexLoadedMsg", msg)
	}
	if got := loaded.Index.Len(); got != 0 {
		t.Fatalf("indexed days = %d, want 0", got)
	}
	if !loaded.Index.Covers(day(2026, time.March, 15)) {
		t.Fatal("empty index should still cover the requested month")
	}
}

func TestLoadIndexStoreErrorBecomesErrMsg(t *testing.T) {
	repo := fakeRepo{
		eventsBetween: func(start, end time.Time) ([]*event.Event, error) {
			return nil, errors.New("database is locked")
		},
	}

	msg := LoadIndex(repo, []time.Time{day(2026, time.March, 1)})()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
	if errMsg.Err == nil {
		t.Fatal("ErrMsg.Err is nil")
	}
}

func TestResolveDate(t *testing.T) {
	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.Local) // Thursday
	cfg := config.Default()

	tests := []struct {
		name       string
		phrase     string
		wantDate   time.Time
		wantSource string
	}{
		{name: "iso date", phrase: "2026-07-14", wantDate: time.Date(2026, time.July, 14, 0, 0, 0, 0, time.UTC), wantSource: "date"},
		{name: "today", phrase: "today", wantDate: day(2026, time.March, 5), wantSource: "relative"},
		{name: "tomorrow", phrase: "tomorrow", wantDate: day(2026, time.March, 6), wantSource: "relative"},
		{name: "bare weekday", phrase: "monday", wantDate: day(2026, time.March, 9), wantSource: "relative"},
		{name: "next weekday", phrase: "next-monday", wantDate: day(2026, time.March, 9), wantSource: "relative"},
		{name: "offset", phrase: "+2w", wantDate: day(2026, time.March, 19), wantSource: "relative"},
		{name: "padded input", phrase: "  today  ", wantDate: day(2026, time.March, 5), wantSource: "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ResolveDate(cfg, tt.phrase, now)()
			resolved, ok := msg.(DateResolvedMsg)
			if !ok {
				t.Fatalf("msg = %T, want DateResolvedMsg", msg)
			}
			if !resolved.Date.Equal(tt.wantDate) {
				t.Fatalf("date = %v, want %v", resolved.Date, tt.wantDate)
			}
			if resolved.Source != tt.wantSource {
				t.Fatalf("source = %q, want %q", resolved.Source, tt.wantSource)
			}
		})
	}
}

func TestResolveDateEmptyPhrase(t *testing.T) {
	msg := ResolveDate(config.Default(), "   ", time.Now())()
	if _, ok := msg.(StatusMsgCmd); !ok {
		t.Fatalf("msg = %T, want StatusMsgCmd", msg)
	}
}

func TestResolveDateUnparseableWithoutLLM(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.Enabled = false

	msg := ResolveDate(cfg, "the day after the gig", time.Now())()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("msg = %T, want ErrMsg", msg)
	}
}
