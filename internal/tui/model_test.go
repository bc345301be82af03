package tui

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuimath/internal/drill"
	"github.com/verte-zerg/tuimath/internal/generator"
	"github.com/verte-zerg/tuimath/internal/model"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := model.Config{Problems: 1, MinFactor: 0, MaxFactor: 10}
	m := NewModel(cfg, generator.NewSeeded(7))
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("Init returned a command; err = %v", m.Err())
	}
	return m
}

func press(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	if m.Err() != nil {
		t.Fatalf("update failed: %v", m.Err())
	}
	return cmd
}

func typeDigits(t *testing.T, m *Model, digits string) {
	t.Helper()
	for _, r := range digits {
		press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInitShowsChallengeCount(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.text, "1 challenges.") {
		t.Fatalf("initial text = %q", m.text)
	}
}

func TestKeyboardDrivesFullSession(t *testing.T) {
	m := newTestModel(t)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.controller.Current() != drill.StateProblem {
		t.Fatalf("state = %q, want %q", m.controller.Current(), drill.StateProblem)
	}

	// The answer is recomputed from an identically seeded generator.
	first, second := generator.NewSeeded(7).Factors(0, 10)
	typeDigits(t, m, strconv.Itoa(first*second))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.controller.Current() != drill.StateCorrect {
		t.Fatalf("state = %q, want %q", m.controller.Current(), drill.StateCorrect)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.controller.Current() != drill.StateEnd {
		t.Fatalf("state = %q, want %q", m.controller.Current(), drill.StateEnd)
	}
	if !strings.Contains(m.text, "You solved 1 out of 1") {
		t.Fatalf("end text = %q", m.text)
	}
}

func TestMouseClickStartsSession(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.controller.Current() != drill.StateProblem {
		t.Fatalf("state = %q, want %q", m.controller.Current(), drill.StateProblem)
	}
}

func TestBackspaceEditsAnswer(t *testing.T) {
	m := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	typeDigits(t, m, "12")
	press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if !strings.HasSuffix(m.text, "\n1") {
		t.Fatalf("problem text = %q, want input line %q", m.text, "1")
	}
}

func TestUnboundEventsAreIgnored(t *testing.T) {
	m := newTestModel(t)
	// No character or delete handlers exist in the initial state.
	typeDigits(t, m, "123")
	press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.controller.Current() != drill.StateInitial {
		t.Fatalf("state = %q, want %q", m.controller.Current(), drill.StateInitial)
	}
}

func TestQuitKeysQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command for ctrl+c")
	}
	cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command for esc")
	}
}

func TestViewCentersContent(t *testing.T) {
	m := newTestModel(t)
	plain := m.View()
	if plain == "" {
		t.Fatal("expected non-empty view")
	}
	m.width = 40
	m.height = 10
	placed := m.View()
	if len(strings.Split(placed, "\n")) != 10 {
		t.Fatalf("expected view to fill %d lines, got %d", 10, len(strings.Split(placed, "\n")))
	}
}
