package drill

// EventKind identifies a class of abstract input events delivered by the
// surface. The controller decides per state which kinds are meaningful.
type EventKind int

const (
	EventClick EventKind = iota
	EventConfirm
	EventCharacter
	EventDelete
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventConfirm:
		return "confirm"
	case EventCharacter:
		return "character"
	case EventDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is a single abstract input event.
type Event struct {
	Kind EventKind
	Rune rune // set for EventCharacter
}
