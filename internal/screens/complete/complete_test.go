package complete

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/careercompass/compass/internal/assessment"
)

func testAnswers() *assessment.Answers {
	a := assessment.NewAnswers()
	a.ToggleInterest("analysis")
	a.RateSkill("Python", 80)
	a.RateSkill("SQL", 60)
	return a
}

func TestCompleteScreen_Title(t *testing.T) {
	s := New(testAnswers(), "Data Science", 6)
	if s.Title() != "Assessment Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Assessment Complete")
	}
}

func TestCompleteScreen_Display(t *testing.T) {
	s := New(testAnswers(), "Data Science", 6)
	view := s.View(80, 24)
	if !strings.Contains(view, "Assessment submitted!") {
		t.Error("expected completion headline in view")
	}
	if !strings.Contains(view, "Data Science") {
		t.Error("expected field of study in view")
	}
}

func TestCompleteScreen_NilAnswers(t *testing.T) {
	s := New(nil, "", 6)
	if view := s.View(80, 24); !strings.Contains(view, "Not specified") {
		t.Error("expected placeholder for missing field")
	}
}

func TestCompleteScreen_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
	}{
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}},
		{"q", tea.KeyPressMsg{Code: 'q', Text: "q"}},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testAnswers(), "Data Science", 6)
			_, cmd := s.Update(tt.msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
		})
	}
}

func TestCompleteScreen_KeyHints(t *testing.T) {
	s := New(testAnswers(), "Data Science", 6)
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
