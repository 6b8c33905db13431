package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Hand keeps cards in the order they were acquired.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) CardAt(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// PlayableIndexes returns, in hand order, the index of every card accepted by playable.
func (h *Hand) PlayableIndexes(playable func(card.Card) bool) []int {
	var indexes []int
	for index, candidateCard := range h.cards {
		if playable(candidateCard) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

// RemoveAt removes the card at index, keeping the order of the others.
func (h *Hand) RemoveAt(index int) (card.Card, bool) {
	removed, ok := h.CardAt(index)
	if !ok {
		return removed, false
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) clear() {
	h.cards = h.cards[:0]
}
