package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/almanaque/internal/dateutil"
	"github.com/javiermolinar/almanaque/internal/event"
	"github.com/javiermolinar/almanaque/internal/tui/commands"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press runs a sequence of keys through the model.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func TestGridKeys_CursorMovement(t *testing.T) {
	start := date(2026, time.March, 15)
	tests := []struct {
		name string
		keys []string
		want time.Time
	}{
		{name: "right one day", keys: []string{"l"}, want: date(2026, time.March, 16)},
		{name: "left one day", keys: []string{"h"}, want: date(2026, time.March, 14)},
		{name: "down one week", keys: []string{"j"}, want: date(2026, time.March, 22)},
		{name: "up one week", keys: []string{"k"}, want: date(2026, time.March, 8)},
		{name: "week round trip", keys: []string{"j", "k"}, want: start},
		{name: "next month keeps day", keys: []string{"L"}, want: date(2026, time.April, 15)},
		{name: "previous month keeps day", keys: []string{"H"}, want: date(2026, time.February, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sized(t, WithInitialDate(start))
			m = press(m, tt.keys...)
			if !dateutil.SameDay(m.cursor, tt.want) {
				t.Errorf("cursor = %v, want %v", m.cursor, tt.want)
			}
		})
	}
}

func TestGridKeys_CursorClampsAtRangeEdge(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.December, 31)))
	m = press(m, "l")
	if !dateutil.SameDay(m.cursor, date(2026, time.December, 31)) {
		t.Errorf("cursor moved past the range edge: %v", m.cursor)
	}

	m = sized(t, WithInitialDate(date(2026, time.January, 1)))
	m = press(m, "h")
	if !dateutil.SameDay(m.cursor, date(2026, time.January, 1)) {
		t.Errorf("cursor moved before the range edge: %v", m.cursor)
	}
}

func TestGridKeys_MonthShiftFollowsVisibleDate(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))
	m = press(m, "L")
	if !dateutil.SameMonth(m.controller.VisibleDate(), date(2026, time.April, 1)) {
		t.Errorf("VisibleDate = %v, want April 2026", m.controller.VisibleDate())
	}
	if got := m.scroller.PreferredPage(); got != 3 {
		t.Errorf("PreferredPage = %d, want 3", got)
	}
}

func TestGridKeys_TapSelectsCursorDay(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))
	m = press(m, " ")

	sel := m.Selection()
	if sel == nil {
		t.Fatal("tap should select the cursor day")
	}
	if !sel.IsSingle() || !dateutil.SameDay(sel.Start, date(2026, time.March, 15)) {
		t.Errorf("selection = %v..%v, want single 2026-03-15", sel.Start, sel.End)
	}

	// Re-tapping the selected day keeps it; the clock must survive.
	m = press(m, " ")
	sel2 := m.Selection()
	if sel2 == nil || !sel2.SameDays(*sel) {
		t.Error("re-tap must keep the same day selected")
	}
}

func TestGridKeys_TapOnBusyDayReportsStatus(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))

	events := []*event.Event{
		{
			ID:        1,
			Calendar:  "default",
			Title:     "Offsite",
			StartDate: date(2026, time.March, 15),
			EndDate:   date(2026, time.March, 15),
			Busy:      true,
		},
	}
	updated, _ := m.Update(commands.IndexLoadedMsg{
		Index:  event.NewIndex(events, []time.Time{date(2026, time.March, 1)}),
		Events: events,
	})
	m = updated.(Model)

	m = press(m, " ")
	if m.Selection() != nil {
		t.Error("busy day must not become the selection")
	}
	if !strings.Contains(m.statusMsg, "Unavailable") {
		t.Errorf("statusMsg = %q, want an unavailable notice", m.statusMsg)
	}
}

func TestGridKeys_EnterAcceptsSelection(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))
	m = press(m, " ")

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)

	if !m.Accepted() {
		t.Error("enter should mark the result accepted")
	}
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("enter produced %T, want tea.QuitMsg", cmd())
	}
}

func TestGridKeys_EscCancels(t *testing.T) {
	m := sized(t)
	updated, cmd := m.Update(keyMsg("esc"))
	m = updated.(Model)

	if m.Accepted() {
		t.Error("esc must not accept")
	}
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc produced %T, want tea.QuitMsg", cmd())
	}
}

func TestWheelMode_ToggleAndTurn(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))

	m = press(m, "w")
	if m.mode != ModeWheel {
		t.Fatalf("mode = %v after w, want ModeWheel", m.mode)
	}
	if m.wheel == nil {
		t.Fatal("wheel should be built on open")
	}

	// Turning the month column moves the visible month.
	m = press(m, "j")
	if !dateutil.SameMonth(m.controller.VisibleDate(), date(2026, time.April, 1)) {
		t.Errorf("VisibleDate = %v, want April 2026", m.controller.VisibleDate())
	}

	// Tab switches to the year column.
	m = press(m, "tab")
	if m.wheelCol != 1 {
		t.Errorf("wheelCol = %d after tab, want 1", m.wheelCol)
	}

	m = press(m, "esc")
	if m.mode != ModeGrid {
		t.Errorf("mode = %v after esc, want ModeGrid", m.mode)
	}
	if m.wheel != nil {
		t.Error("wheel should be torn down on close")
	}
}

func TestWheelMode_CloseAlignsCursorToVisibleMonth(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 31)))

	// Open the wheel, move one month forward, close.
	m = press(m, "w", "j", "w")

	// April has 30 days: the cursor's day of month clamps.
	if !dateutil.SameDay(m.cursor, date(2026, time.April, 30)) {
		t.Errorf("cursor = %v, want 2026-04-30", m.cursor)
	}
}

func TestTimeMode_ToggleAndCommit(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))
	m = press(m, " ", "t")

	if m.mode != ModeTime {
		t.Fatalf("mode = %v after t, want ModeTime", m.mode)
	}
	if m.timeWheel == nil {
		t.Fatal("time wheel should be built on open")
	}

	// Turn the hour wheel, then close; the selection keeps the day but
	// carries the new clock.
	m = press(m, "j", "t")
	if m.mode != ModeGrid {
		t.Fatalf("mode = %v after closing, want ModeGrid", m.mode)
	}
	sel := m.Selection()
	if sel == nil {
		t.Fatal("closing time mode should keep a selection")
	}
	if !dateutil.SameDay(sel.Start, date(2026, time.March, 15)) {
		t.Errorf("selection day = %v, want 2026-03-15", sel.Start)
	}
}

func TestTimeMode_EnterAccepts(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))
	m = press(m, "t")

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)

	if !m.Accepted() {
		t.Error("enter in time mode should accept")
	}
	if cmd == nil {
		t.Error("enter in time mode should quit")
	}
	if !strings.Contains(m.SelectionString(), "T") {
		t.Errorf("SelectionString() = %q, want a timestamp", m.SelectionString())
	}
}

func TestPromptMode_OpenSubmitCancel(t *testing.T) {
	m := sized(t, WithInitialDate(date(2026, time.March, 15)))

	m = press(m, "g")
	if m.mode != ModePrompt {
		t.Fatalf("mode = %v after g, want ModePrompt", m.mode)
	}
	if !m.prompt.Focused() {
		t.Error("prompt should take focus")
	}

	// Esc drops back to the grid and clears the draft.
	m = press(m, "x", "esc")
	if m.mode != ModeGrid {
		t.Errorf("mode = %v after esc, want ModeGrid", m.mode)
	}
	if m.prompt.Value() != "" {
		t.Errorf("prompt value = %q after cancel, want empty", m.prompt.Value())
	}

	// Submitting a value schedules the resolve command.
	m = press(m, "g")
	m.prompt.SetValue("today")
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	if m.mode != ModeGrid {
		t.Errorf("mode = %v after submit, want ModeGrid", m.mode)
	}
	if cmd == nil {
		t.Error("submit should schedule date resolution")
	}
}

func TestPromptMode_TabCompletes(t *testing.T) {
	m := sized(t)
	m = press(m, "g")
	m.prompt.SetValue("tod")
	m = press(m, "tab")
	if m.prompt.Value() != "today" {
		t.Errorf("prompt value = %q after tab, want %q", m.prompt.Value(), "today")
	}
}

func TestHelpMode_ToggleFromGrid(t *testing.T) {
	m := sized(t)
	m = press(m, "?")
	if m.mode != ModeHelp {
		t.Fatalf("mode = %v after ?, want ModeHelp", m.mode)
	}
	m = press(m, "esc")
	if m.mode != ModeGrid {
		t.Errorf("mode = %v after esc, want ModeGrid", m.mode)
	}
}

func TestReloadKey_SchedulesIndexLoad(t *testing.T) {
	m := sized(t)
	updated, cmd := m.Update(keyMsg("r"))
	if cmd == nil {
		t.Error("r should schedule an index load")
	}
	_ = updated
}
