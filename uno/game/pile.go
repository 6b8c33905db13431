package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile; the most recent play is on top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// TakeUnderTop removes and returns every card but the top one.
func (p *Pile) TakeUnderTop() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	under := make([]card.Card, len(p.cards)-1)
	copy(under, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return under
}
