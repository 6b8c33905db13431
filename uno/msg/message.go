package msg

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Message builds the lines printed for game events. Every line ends with a line break.
var Message = MessageWriter{}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

// HumanPlayerHasNoMatchingCardsInHand names what has to be matched: the last card, or the
// color chosen for a wild.
func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, toMatch fmt.Stringer) string {
	return Sprintfln("%s, none of your cards match %s!", playerName, toMatch)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerMustDraw(playerName string, amount int) string {
	return Sprintfln("%s has %d cards to draw!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPenalized(playerName string, reason string, amount int) string {
	return Sprintfln("%s draws %d: %s!", playerName, amount, reason)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return Sprintfln("%s calls UNO!", playerName)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("%s's turn", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}
