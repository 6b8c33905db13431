package event

import "github.com/ratel-online/uno/uno/card"

// FirstCardPlayedPayload carries the colored card turned up to start the discard pile.
// Wild cards turned up on the way are not reported.
type FirstCardPlayedPayload struct {
	Card card.Card
}

// FirstCardPlayedListener is notified once per game, before the first turn.
type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type firstCardPlayedEmitter struct {
	listeners []FirstCardPlayedListener
}

func (e *firstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnFirstCardPlayed(payload)
	}
}
