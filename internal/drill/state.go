package drill

import (
	"errors"
	"fmt"
)

// StateID identifies one of the fixed controller states.
type StateID string

const (
	StateInitial   StateID = "initial"
	StateProblem   StateID = "problem"
	StateCorrect   StateID = "correct"
	StateIncorrect StateID = "incorrect"
	StateEnd       StateID = "end"
)

// ErrUnknownState reports a transition to an identifier outside the fixed
// enumeration. Reaching it is a programming error, not a runtime condition.
var ErrUnknownState = errors.New("unknown state")

// Handler reacts to one abstract input event.
type Handler func(Event) error

// State couples a display template with the event routings that are active
// while the state is current.
type State struct {
	Message  string
	Routings map[EventKind][]Handler
}

type stateTable map[StateID]State

func (t stateTable) get(id StateID) (State, error) {
	state, ok := t[id]
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownState, id)
	}
	return state, nil
}
