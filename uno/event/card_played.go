package event

import "github.com/ratel-online/uno/uno/card"

// CardPlayedPayload is sent once the card is on the discard pile, before its action resolves.
type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	// HandSize counts the cards left after the play, before any UNO penalty.
	HandSize int
}

// CardPlayedListener is notified of every play except the starting card.
type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

// cardPlayedEmitter notifies listeners in subscription order.
type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
