package event

type PenaltyReason int

const (
	// PenaltyUnoNotCalled is drawn immediately by a player who got down to one card silently.
	PenaltyUnoNotCalled PenaltyReason = iota + 1
	PenaltyDrawTwo
	PenaltyWildDrawFour
)

func (r PenaltyReason) String() string {
	switch r {
	case PenaltyUnoNotCalled:
		return "forgot to call UNO"
	case PenaltyDrawTwo:
		return "draw two"
	case PenaltyWildDrawFour:
		return "wild draw four"
	default:
		return "unknown"
	}
}

// PenaltyAppliedPayload names the player who owes (or already drew) Amount cards.
type PenaltyAppliedPayload struct {
	PlayerName string
	Reason     PenaltyReason
	Amount     int
	// PendingDraw is the accumulated obligation for draw-card penalties; zero for UNO penalties.
	PendingDraw int
}

type PenaltyAppliedListener interface {
	OnPenaltyApplied(PenaltyAppliedPayload)
}

type penaltyAppliedEmitter struct {
	listeners []PenaltyAppliedListener
}

func (e *penaltyAppliedEmitter) AddListener(listener PenaltyAppliedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *penaltyAppliedEmitter) Emit(payload PenaltyAppliedPayload) {
	for _, listener := range e.listeners {
		listener.OnPenaltyApplied(payload)
	}
}
