// Package event carries the state-change notifications of one game to its front end.
package event

// Bus holds one emitter per event kind. Every game owns its own Bus.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerPassed      *playerPassedEmitter
	CardsDrawn        *cardsDrawnEmitter
	PenaltyApplied    *penaltyAppliedEmitter
	TurnChanged       *turnChangedEmitter
	DirectionReversed *directionReversedEmitter
	PlayerSkipped     *playerSkippedEmitter
	UnoCalled         *unoCalledEmitter
	RoundOver         *roundOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		PenaltyApplied:    &penaltyAppliedEmitter{},
		TurnChanged:       &turnChangedEmitter{},
		DirectionReversed: &directionReversedEmitter{},
		PlayerSkipped:     &playerSkippedEmitter{},
		UnoCalled:         &unoCalledEmitter{},
		RoundOver:         &roundOverEmitter{},
	}
}

// AddListener subscribes listener to every event whose listener interface it implements.
// It returns the number of subscriptions made.
func (b *Bus) AddListener(listener interface{}) int {
	subscribed := 0
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(PenaltyAppliedListener); ok {
		b.PenaltyApplied.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(TurnChangedListener); ok {
		b.TurnChanged.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(DirectionReversedListener); ok {
		b.DirectionReversed.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(PlayerSkippedListener); ok {
		b.PlayerSkipped.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(UnoCalledListener); ok {
		b.UnoCalled.AddListener(l)
		subscribed++
	}
	if l, ok := listener.(RoundOverListener); ok {
		b.RoundOver.AddListener(l)
		subscribed++
	}
	return subscribed
}
