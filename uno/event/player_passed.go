package event

// PlayerPassedPayload names a player who ended the turn without playing.
type PlayerPassedPayload struct {
	PlayerName string
}

// PlayerPassedListener is not notified for skipped players; see PlayerSkippedListener.
type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	listeners []PlayerPassedListener
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerPassed(payload)
	}
}
