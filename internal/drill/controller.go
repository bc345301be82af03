// Package drill implements the multiplication drill state machine. Each state
// owns a display template and a table of event routings; a transition rebinds
// the surface so that exactly one state's routings are active at a time.
package drill

import (
	"fmt"
	"strconv"

	"github.com/verte-zerg/tuimath/internal/generator"
	"github.com/verte-zerg/tuimath/internal/model"
	"github.com/verte-zerg/tuimath/internal/session"
	"github.com/verte-zerg/tuimath/internal/template"
)

// Surface is the external display and input collaborator. SetText replaces
// the displayed message; Subscribe and Unsubscribe install and remove the
// handlers that receive events of a given kind.
type Surface interface {
	SetText(text string)
	Subscribe(kind EventKind, h Handler)
	Unsubscribe(kind EventKind)
}

// Controller drives the drill: it owns the current state, the problem and
// session variables, and the transition logic.
type Controller struct {
	surface Surface
	gen     *generator.Generator
	tracker *session.Tracker
	states  stateTable

	current StateID
	bound   bool

	minFactor int
	maxFactor int

	first  int
	second int
	input  string
}

// New returns a Controller in the initial state. Call Start to render it and
// install its event bindings on the surface.
func New(cfg model.Config, gen *generator.Generator, surface Surface) *Controller {
	c := &Controller{
		surface:   surface,
		gen:       gen,
		tracker:   session.New(cfg.Problems),
		minFactor: cfg.MinFactor,
		maxFactor: cfg.MaxFactor,
		current:   StateInitial,
	}
	c.states = stateTable{
		StateInitial: {
			Message: "[problems] challenges.\nClick or press enter to start!",
			Routings: map[EventKind][]Handler{
				EventClick:   {c.startGame},
				EventConfirm: {c.startGame},
			},
		},
		StateProblem: {
			Message: "[first] x [second]\n[input]",
			Routings: map[EventKind][]Handler{
				EventCharacter: {c.onCharacter},
				EventDelete:    {c.onDelete},
				EventConfirm:   {c.onConfirm},
			},
		},
		StateCorrect: {
			Message: "That's correct!\nClick to continue.",
			Routings: map[EventKind][]Handler{
				EventClick:   {c.nextProblem},
				EventConfirm: {c.nextProblem},
			},
		},
		StateIncorrect: {
			Message: "That's incorrect.\nClick to continue.",
			Routings: map[EventKind][]Handler{
				EventClick:   {c.nextProblem},
				EventConfirm: {c.nextProblem},
			},
		},
		StateEnd: {
			Message: "You solved [solved] out of [problems] in [seconds] seconds!\nClick to play again!",
			Routings: map[EventKind][]Handler{
				EventClick:   {c.startGame},
				EventConfirm: {c.startGame},
			},
		},
	}
	return c
}

// Start enters the initial state, rendering it and installing its bindings.
func (c *Controller) Start() error {
	return c.enter(StateInitial)
}

// Current returns the active state identifier.
func (c *Controller) Current() StateID {
	return c.current
}

// enter transitions to the target state: it removes the previous state's
// event bindings from the surface, installs the new state's bindings,
// resolves the new state's template, and pushes the text to the surface.
func (c *Controller) enter(id StateID) error {
	next, err := c.states.get(id)
	if err != nil {
		return err
	}
	if c.bound {
		prev, err := c.states.get(c.current)
		if err != nil {
			return err
		}
		for kind := range prev.Routings {
			c.surface.Unsubscribe(kind)
		}
	}
	for kind, handlers := range next.Routings {
		for _, h := range handlers {
			c.surface.Subscribe(kind, h)
		}
	}
	c.current = id
	c.bound = true
	return c.refresh()
}

// refresh re-resolves the current state's template and pushes the text.
func (c *Controller) refresh() error {
	state, err := c.states.get(c.current)
	if err != nil {
		return err
	}
	text, err := template.Resolve(state.Message, c.renderContext())
	if err != nil {
		return fmt.Errorf("render state %q: %w", c.current, err)
	}
	c.surface.SetText(text)
	return nil
}

// renderContext snapshots every controller attribute a template may name.
func (c *Controller) renderContext() map[string]string {
	seconds := ""
	if elapsed, err := c.tracker.ElapsedSeconds(); err == nil {
		seconds = strconv.FormatFloat(elapsed, 'f', 1, 64)
	}
	return map[string]string{
		"problems": strconv.Itoa(c.tracker.Problems()),
		"solved":   strconv.Itoa(c.tracker.Solved()),
		"first":    strconv.Itoa(c.first),
		"second":   strconv.Itoa(c.second),
		"input":    c.input,
		"seconds":  seconds,
	}
}

// startGame begins a fresh session: counters reset, timer started, first
// problem shown. Bound in the initial and end states.
func (c *Controller) startGame(Event) error {
	c.input = ""
	c.tracker.Begin()
	return c.displayProblem()
}

// onCharacter appends a decimal digit to the input buffer. Anything else is
// ignored.
func (c *Controller) onCharacter(ev Event) error {
	if ev.Rune < '0' || ev.Rune > '9' {
		return nil
	}
	c.input += string(ev.Rune)
	return c.refresh()
}

// onDelete drops the last buffered digit. Deleting from an empty buffer is a
// no-op.
func (c *Controller) onDelete(Event) error {
	if c.input != "" {
		c.input = c.input[:len(c.input)-1]
	}
	return c.refresh()
}

// onConfirm judges the buffered answer. An empty buffer is ignored. The
// buffer only ever holds digits, so parsing cannot fail at runtime.
func (c *Controller) onConfirm(Event) error {
	if c.input == "" {
		return nil
	}
	answer, err := strconv.Atoi(c.input)
	if err != nil {
		return fmt.Errorf("parse answer %q: %w", c.input, err)
	}
	if answer == c.first*c.second {
		c.tracker.MarkSolved()
		return c.enter(StateCorrect)
	}
	return c.enter(StateIncorrect)
}

// nextProblem clears the buffer and advances to the next problem or, when
// the set is complete, to the summary.
func (c *Controller) nextProblem(Event) error {
	c.input = ""
	return c.displayProblem()
}

func (c *Controller) displayProblem() error {
	if c.tracker.Done() {
		c.tracker.Finish()
		return c.enter(StateEnd)
	}
	c.first, c.second = c.gen.Factors(c.minFactor, c.maxFactor)
	if err := c.enter(StateProblem); err != nil {
		return err
	}
	c.tracker.MarkDisplayed()
	return nil
}
