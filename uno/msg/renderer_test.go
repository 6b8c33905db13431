package msg_test

import (
	"bytes"
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func init() {
	color.Disable()
}

func TestMessageWriter(t *testing.T) {
	require.Equal(t, "First card is [7]\n", msg.Message.FirstCardPlayed(card.NewNumberCard(color.Red, 7)))
	require.Equal(t, "Annie drew a card!\n", msg.Message.PlayerDrewCards("Annie", []card.Card{card.NewWildCard()}))
	require.Equal(t, "Annie drew 2 cards!\n", msg.Message.PlayerDrewCards("Annie", []card.Card{card.NewWildCard(), card.NewWildCard()}))
	require.Equal(t, "Annie draws 2: forgot to call UNO!\n",
		msg.Message.PlayerPenalized("Annie", event.PenaltyUnoNotCalled.String(), 2))
	require.Equal(t, "Bob picked color blue!\n", msg.Message.PlayerPickedColor("Bob", color.Blue))
	require.Equal(t, "WELCOME TO UNO\n", msg.Message.Welcome())
}

func TestRenderer(t *testing.T) {
	var out bytes.Buffer
	renderer := msg.NewRenderer(&out, "Alice")
	require.Equal(t, 11, event.NewBus().AddListener(renderer))

	specs := []game.PlayerSpec{{Name: "Alice", Human: true}, {Name: "Annie"}}
	g, err := game.New(specs, game.WithSeed(5), game.WithListener(renderer))
	require.NoError(t, err)
	require.Contains(t, out.String(), "First card is "+g.Top().String()+"\n")
	require.Contains(t, out.String(), "It's your turn, Alice!\n")

	out.Reset()
	require.NoError(t, g.DrawCard(0))
	require.Contains(t, out.String(), "You drew [")

	out.Reset()
	require.NoError(t, g.PassTurn())
	require.Equal(t, "Alice passed!\nAnnie's turn\n", out.String())

	out.Reset()
	require.NoError(t, g.CallUno(1))
	require.Empty(t, out.String())
}

func TestRendererPenalties(t *testing.T) {
	var out bytes.Buffer
	renderer := msg.NewRenderer(&out, "Alice")

	renderer.OnPenaltyApplied(event.PenaltyAppliedPayload{PlayerName: "Annie", Reason: event.PenaltyDrawTwo, Amount: 2, PendingDraw: 6})
	renderer.OnPenaltyApplied(event.PenaltyAppliedPayload{PlayerName: "Alice", Reason: event.PenaltyUnoNotCalled, Amount: 2})
	renderer.OnCardsDrawn(event.CardsDrawnPayload{PlayerName: "Annie"})
	renderer.OnPlayerSkipped(event.PlayerSkippedPayload{PlayerName: "Annie"})
	renderer.OnDirectionReversed(event.DirectionReversedPayload{PlayerName: "Alice", Direction: -1})
	renderer.OnRoundOver(event.RoundOverPayload{Winner: "Annie"})

	require.Equal(t, "Annie has 6 cards to draw!\n"+
		"Alice draws 2: forgot to call UNO!\n"+
		"Annie's turn skipped!\n"+
		"Turn order has been reversed!\n"+
		"Annie wins!\n", out.String())
}

func TestRendererNamesTheColorToMatch(t *testing.T) {
	var out bytes.Buffer
	renderer := msg.NewRenderer(&out, "Alice")

	renderer.OnCardPlayed(event.CardPlayedPayload{PlayerName: "Annie", Card: card.NewNumberCard(color.Red, 4), HandSize: 5})
	renderer.OnTurnChanged(event.TurnChangedPayload{PlayerName: "Alice", Human: true})
	require.Contains(t, out.String(), "Alice, none of your cards match [4]!\n")

	out.Reset()
	renderer.OnCardPlayed(event.CardPlayedPayload{PlayerName: "Annie", Card: card.NewWildCard(), HandSize: 4})
	renderer.OnColorPicked(event.ColorPickedPayload{PlayerName: "Annie", Color: color.Blue})
	renderer.OnTurnChanged(event.TurnChangedPayload{PlayerName: "Alice", Human: true})
	require.Equal(t, "Annie played (*)!\n"+
		"Annie picked color blue!\n"+
		"It's your turn, Alice!\n"+
		"Alice, none of your cards match blue!\n", out.String())

	out.Reset()
	renderer.OnTurnChanged(event.TurnChangedPayload{PlayerName: "Alice", Human: true, HasLegalMove: true})
	require.Equal(t, "It's your turn, Alice!\n", out.String())
}
