package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestNewMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
	})
	if m.Selected != 1 {
		t.Errorf("expected first enabled item selected, got %d", m.Selected)
	}

	empty := NewMenu(nil)
	if _, ok := empty.Current(); ok {
		t.Error("empty menu should have no current item")
	}
	if _, cmd := empty.Update(key(tea.KeyDown)); cmd != nil {
		t.Error("empty menu should ignore keys")
	}
}

func TestMenu_Wraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b", Disabled: true}, {Label: "c"}})

	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 2 {
		t.Errorf("up from top should wrap to last, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 0 {
		t.Errorf("down from bottom should wrap to first, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("down should skip disabled, got %d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	type picked struct{}
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		return func() tea.Msg { return picked{} }
	}}})

	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(picked); !ok {
		t.Errorf("unexpected msg %T", cmd())
	}
}

func TestMenu_ViewShowsSelectedDetail(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "fractions", Detail: "parts of a whole"},
		{Label: "addition", Detail: "combining numbers"},
	})
	view := m.View()
	if !strings.Contains(view, "parts of a whole") {
		t.Error("expected detail of selected item")
	}
	if strings.Contains(view, "combining numbers") {
		t.Error("detail of unselected item should be hidden")
	}
}

func TestScoreBar_FitsWidth(t *testing.T) {
	for _, ratio := range []float64{-1, 0, 0.3, 0.6, 1, 2} {
		bar := ScoreBar{Label: "x", LabelWidth: 5, Ratio: ratio, Suffix: "1/2", Width: 40}
		view := bar.View()
		if !strings.Contains(view, "1/2") {
			t.Errorf("ratio %v: missing suffix", ratio)
		}
	}
}

func TestScoreColor(t *testing.T) {
	if scoreColor(0.9) == scoreColor(0.1) {
		t.Error("strong and weak scores should differ")
	}
	if scoreColor(0.6) == scoreColor(0.9) {
		t.Error("middling score should differ from strong")
	}
}

func TestContentWidth(t *testing.T) {
	tests := map[int]int{10: minContentWidth, 60: 54, 200: maxContentWidth}
	for frame, want := range tests {
		if got := ContentWidth(frame); got != want {
			t.Errorf("ContentWidth(%d) = %d, want %d", frame, got, want)
		}
	}
}

func TestCard_Title(t *testing.T) {
	if !strings.Contains(Card("Progress", "body", 40), "Progress") {
		t.Error("expected title in card")
	}
}
