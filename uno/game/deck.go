package game

import (
	"math/rand"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile. The top card is the last element of cards.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// NewDeck returns a shuffled standard 108 card deck.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{cards: BuildCards(), rng: rng}
	Shuffle(deck.cards, rng)
	return deck
}

// NewStackedDeck uses cards as-is, the last card being drawn first.
func NewStackedDeck(cards []card.Card, rng *rand.Rand) *Deck {
	stacked := make([]card.Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// Draw pops the top card. An empty deck is refilled from pile, keeping the pile's top card
// where it is.
func (d *Deck) Draw(pile *Pile) (card.Card, error) {
	if len(d.cards) == 0 {
		d.refill(pile)
	}
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsDeckExhausted
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// DrawN draws up to amount cards, stopping early when the deck is exhausted.
func (d *Deck) DrawN(amount int, pile *Pile) ([]card.Card, error) {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawn, err := d.Draw(pile)
		if err != nil {
			return cards, err
		}
		cards = append(cards, drawn)
	}
	return cards, nil
}

// PutBottom slides c under the deck so it is drawn last.
func (d *Deck) PutBottom(c card.Card) {
	d.cards = append([]card.Card{c}, d.cards...)
}

func (d *Deck) refill(pile *Pile) {
	if pile == nil {
		return
	}
	reclaimed := pile.TakeUnderTop()
	if len(reclaimed) == 0 {
		return
	}
	Shuffle(reclaimed, d.rng)
	d.cards = append(d.cards, reclaimed...)
	log.Infof("draw pile reshuffled from %d discarded cards\n", len(reclaimed))
}

// BuildCards returns the 108 cards of a standard deck in a fixed order.
func BuildCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)
	cards = append(cards, createBlackCards()...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

// Shuffle is a Fisher-Yates shuffle driven by rng.
func Shuffle(cards []card.Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
