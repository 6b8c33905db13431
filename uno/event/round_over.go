package event

type RoundOverPayload struct {
	GameID string
	Winner string
}

type RoundOverListener interface {
	OnRoundOver(RoundOverPayload)
}

type roundOverEmitter struct {
	listeners []RoundOverListener
}

func (e *roundOverEmitter) AddListener(listener RoundOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *roundOverEmitter) Emit(payload RoundOverPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundOver(payload)
	}
}
