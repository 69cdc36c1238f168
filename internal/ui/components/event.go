package components

// EventKind is the phase of a pointer gesture.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is one pointer input delivered by the host. Geometry is resolved by
// the host: Inside says whether an Up landed within the component bounds and
// Part identifies the segment, star or close button under the pointer.
type Event struct {
	Kind EventKind
	// DX is the horizontal drag delta in cells since the previous Move.
	DX     float64
	Inside bool
	Part   int
}

// Down presses part.
func Down(part int) Event {
	return Event{Kind: PointerDown, Inside: true, Part: part}
}

// Up releases over part.
func Up(part int) Event {
	return Event{Kind: PointerUp, Inside: true, Part: part}
}

// UpOutside releases outside the component bounds.
func UpOutside() Event {
	return Event{Kind: PointerUp}
}

// Move drags by dx cells.
func Move(dx float64) Event {
	return Event{Kind: PointerMove, DX: dx, Inside: true}
}

// Cancel aborts the gesture in progress.
func Cancel() Event {
	return Event{Kind: PointerCancel}
}

// Tap is a press and release over part.
func Tap(part int) []Event {
	return []Event{Down(part), Up(part)}
}

// Handler consumes pointer events.
type Handler interface {
	Handle(Event)
}

// Send delivers events to h in order.
func Send(h Handler, events ...Event) {
	for _, e := range events {
		h.Handle(e)
	}
}
