package player

import (
	"errors"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Bot plays the turns of AI seats: the first playable card in hand order, otherwise one draw.
type Bot struct{}

func NewBot() Bot {
	return Bot{}
}

// TakeTurn plays the current AI seat's whole turn, including the color choice and the final
// AdvanceTurn.
func (b Bot) TakeTurn(g *game.Game) error {
	if !g.CurrentIsAI() {
		return consts.ErrorsNotCurrentPlayer
	}
	seat := g.CurrentIndex()

	for g.PendingDraw() > 0 {
		if moves := g.LegalMoves(); len(moves) > 0 {
			return b.play(g, seat, moves[0])
		}
		if err := g.DrawCard(seat); err != nil {
			return err
		}
	}

	if moves := g.LegalMoves(); len(moves) > 0 {
		return b.play(g, seat, moves[0])
	}
	if err := g.DrawCard(seat); err != nil {
		if errors.Is(err, consts.ErrorsDeckExhausted) {
			return g.PassTurn()
		}
		return err
	}
	drawnIndex := len(g.Hand(seat)) - 1
	for _, move := range g.LegalMoves() {
		if move == drawnIndex {
			return b.play(g, seat, drawnIndex)
		}
	}
	return g.PassTurn()
}

func (b Bot) play(g *game.Game, seat, cardIndex int) error {
	if len(g.Hand(seat)) == 2 {
		if err := g.CallUno(seat); err != nil {
			return err
		}
	}
	if err := g.PlayCard(seat, cardIndex); err != nil {
		return err
	}
	switch g.Phase() {
	case game.PhaseRoundOver:
		return nil
	case game.PhaseAwaitingColorChoice:
		if err := g.SelectColor(b.PickColor(g.Hand(seat))); err != nil {
			return err
		}
	}
	return g.AdvanceTurn()
}

// PickColor names the color the hand holds most of. Ties go to the color listed first in
// color.Playable.
func (b Bot) PickColor(hand []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color().IsPlayable() {
			colorCounts[handCard.Color()]++
		}
	}

	mostFrequentColor := color.Red
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Playable {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}
