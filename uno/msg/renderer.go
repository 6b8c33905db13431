package msg

import (
	"fmt"
	"io"

	"github.com/ratel-online/uno/uno/event"
)

// Renderer turns the events of one game into the lines shown to the human player at seat
// name. Subscribe it with Bus.AddListener.
type Renderer struct {
	out   io.Writer
	human string
	// toMatch is the last played card, or the color chosen for it when it was a wild.
	toMatch fmt.Stringer
}

func NewRenderer(out io.Writer, human string) *Renderer {
	return &Renderer{out: out, human: human}
}

func (r *Renderer) print(line string) {
	_, _ = fmt.Fprint(r.out, line)
}

func (r *Renderer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	r.toMatch = payload.Card
	r.print(Message.FirstCardPlayed(payload.Card))
}

func (r *Renderer) OnCardPlayed(payload event.CardPlayedPayload) {
	r.toMatch = payload.Card
	r.print(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (r *Renderer) OnColorPicked(payload event.ColorPickedPayload) {
	r.toMatch = payload.Color
	r.print(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (r *Renderer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	r.print(Message.PlayerPassed(payload.PlayerName))
}

func (r *Renderer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if len(payload.Cards) == 0 {
		return
	}
	if payload.PlayerName == r.human {
		r.print(Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	r.print(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (r *Renderer) OnPenaltyApplied(payload event.PenaltyAppliedPayload) {
	if payload.Reason == event.PenaltyUnoNotCalled {
		r.print(Message.PlayerPenalized(payload.PlayerName, payload.Reason.String(), payload.Amount))
		return
	}
	r.print(Message.PlayerMustDraw(payload.PlayerName, payload.PendingDraw))
}

func (r *Renderer) OnTurnChanged(payload event.TurnChangedPayload) {
	if !payload.Human {
		r.print(Message.PlayerTurnStarted(payload.PlayerName))
		return
	}
	r.print(Message.HumanPlayerTurnStarted(payload.PlayerName))
	if !payload.HasLegalMove && payload.PendingDraw == 0 {
		r.print(Message.HumanPlayerHasNoMatchingCardsInHand(payload.PlayerName, r.toMatch))
	}
}

func (r *Renderer) OnDirectionReversed(event.DirectionReversedPayload) {
	r.print(Message.TurnOrderReversed())
}

func (r *Renderer) OnPlayerSkipped(payload event.PlayerSkippedPayload) {
	r.print(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (r *Renderer) OnUnoCalled(payload event.UnoCalledPayload) {
	r.print(Message.PlayerCalledUno(payload.PlayerName))
}

func (r *Renderer) OnRoundOver(payload event.RoundOverPayload) {
	r.print(Message.WinnerFound(payload.Winner))
}
