package event

// TurnChangedPayload tells the front end whose turn it is. An AI turn is triggered by the
// front end, never by the engine.
type TurnChangedPayload struct {
	PlayerIndex  int
	PlayerName   string
	Human        bool
	HasLegalMove bool
	PendingDraw  int
}

type TurnChangedListener interface {
	OnTurnChanged(TurnChangedPayload)
}

type turnChangedEmitter struct {
	listeners []TurnChangedListener
}

func (e *turnChangedEmitter) AddListener(listener TurnChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnChangedEmitter) Emit(payload TurnChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnChanged(payload)
	}
}
