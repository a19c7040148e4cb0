package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_ShowsTitleAndStatus(t *testing.T) {
	header := RenderHeader("Practice", "amira · math_basics", 100)

	for _, want := range []string{"Tutorly", "Practice", "amira · math_basics"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if lipgloss.Height(header) != HeaderHeight {
		t.Errorf("header height = %d, want %d", lipgloss.Height(header), HeaderHeight)
	}
}

func TestSpread_KeepsGaps(t *testing.T) {
	line := spread("ab", "cd", "ef", 4)
	if line != "ab cd ef" {
		t.Errorf("spread on narrow width = %q", line)
	}

	line = spread("L", "C", "R", 21)
	if lipgloss.Width(line) != 21 {
		t.Errorf("spread width = %d, want 21", lipgloss.Width(line))
	}
}

func TestRenderFooter_DropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
		{Key: "Tab", Description: "Switch subject with a long description"},
	}

	wide := RenderFooter(hints, 200)
	if strings.Contains(wide, "…") {
		t.Error("wide footer should show every hint")
	}

	narrow := RenderFooter(hints, 40)
	if !strings.Contains(narrow, "Submit") {
		t.Error("narrow footer should keep the first hint")
	}
	if strings.Contains(narrow, "long description") || !strings.Contains(narrow, "…") {
		t.Error("narrow footer should elide the overflowing hint")
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)

	if lipgloss.Height(frame) != 30 {
		t.Errorf("frame height = %d, want 30", lipgloss.Height(frame))
	}
}
