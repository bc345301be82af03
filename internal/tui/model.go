// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuimath/internal/drill"
	"github.com/verte-zerg/tuimath/internal/generator"
	"github.com/verte-zerg/tuimath/internal/model"
)

var messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)

type keyMap struct {
	Quit key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Model implements the Bubble Tea drill UI. It is the controller's surface:
// it holds the displayed text and the handlers bound for the active state,
// and translates terminal input into abstract controller events.
type Model struct {
	controller *drill.Controller
	handlers   map[drill.EventKind][]drill.Handler
	keys       keyMap

	text   string
	width  int
	height int

	err error
}

// NewModel constructs a drill TUI model and its controller.
func NewModel(cfg model.Config, gen *generator.Generator) *Model {
	m := &Model{
		handlers: map[drill.EventKind][]drill.Handler{},
		keys:     defaultKeyMap,
	}
	m.controller = drill.New(cfg, gen, m)
	return m
}

// Err returns the error that stopped the UI, if any.
func (m *Model) Err() error {
	return m.err
}

// SetText implements drill.Surface.
func (m *Model) SetText(text string) {
	m.text = text
}

// Subscribe implements drill.Surface.
func (m *Model) Subscribe(kind drill.EventKind, h drill.Handler) {
	m.handlers[kind] = append(m.handlers[kind], h)
}

// Unsubscribe implements drill.Surface.
func (m *Model) Unsubscribe(kind drill.EventKind) {
	delete(m.handlers, kind)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if err := m.controller.Start(); err != nil {
		m.err = err
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.dispatch(drill.Event{Kind: drill.EventClick})
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.dispatch(drill.Event{Kind: drill.EventConfirm})
		case tea.KeyBackspace, tea.KeyDelete:
			return m, m.dispatch(drill.Event{Kind: drill.EventDelete})
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if cmd := m.dispatch(drill.Event{Kind: drill.EventCharacter, Rune: r}); cmd != nil {
					return m, cmd
				}
			}
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// dispatch delivers an event to the handlers bound for its kind. Handlers
// rebind the surface mid-dispatch on a transition, so it iterates over a copy.
func (m *Model) dispatch(ev drill.Event) tea.Cmd {
	handlers := append([]drill.Handler(nil), m.handlers[ev.Kind]...)
	for _, h := range handlers {
		if err := h(ev); err != nil {
			m.err = err
			return tea.Quit
		}
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.text == "" {
		return ""
	}
	content := messageStyle.Render(centerLines(m.text))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
