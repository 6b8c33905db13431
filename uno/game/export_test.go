package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
)

// Test hooks that rearrange cards between piles without creating or losing any.

func takeFromDeck(g *Game, c card.Card) error {
	for i := len(g.deck.cards) - 1; i >= 0; i-- {
		if g.deck.cards[i] == c {
			g.deck.cards = append(g.deck.cards[:i], g.deck.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("card %s not in draw pile", c.Label())
}

// ForceHands returns every hand to the bottom of the deck, then refills seat i with hands[i]
// taken from the draw pile. Seats beyond len(hands) keep an empty hand.
func ForceHands(g *Game, hands ...[]card.Card) error {
	for _, player := range g.players.players {
		g.deck.cards = append(player.hand.Cards(), g.deck.cards...)
		player.hand.clear()
	}
	for index, cards := range hands {
		player := g.players.players[index]
		for _, c := range cards {
			if err := takeFromDeck(g, c); err != nil {
				return err
			}
			player.hand.AddCards([]card.Card{c})
		}
	}
	return nil
}

// ForceTop returns the discard pile to the deck, then moves c from the draw pile onto the
// discard pile and makes it the card to match.
func ForceTop(g *Game, c card.Card) error {
	g.deck.cards = append(g.pile.cards, g.deck.cards...)
	g.pile.cards = nil
	if err := takeFromDeck(g, c); err != nil {
		return err
	}
	g.pile.Add(c)
	g.activeColor = c.Color()
	g.activeValue = c.Value()
	return nil
}

// ForceDrawOrder puts cards on top of the draw pile so that they are drawn in order.
func ForceDrawOrder(g *Game, cards ...card.Card) error {
	for _, c := range cards {
		if err := takeFromDeck(g, c); err != nil {
			return err
		}
	}
	for i := len(cards) - 1; i >= 0; i-- {
		g.deck.cards = append(g.deck.cards, cards[i])
	}
	return nil
}

// EmptyDrawPile slides the whole draw pile under the discard pile's top card.
func EmptyDrawPile(g *Game) {
	g.pile.cards = append(g.deck.cards, g.pile.cards...)
	g.deck.cards = nil
}
