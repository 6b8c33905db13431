package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is an immutable UNO card. Wild-colored cards always carry Wild or WildDrawFour.
type Card struct {
	color color.Color
	value Value
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{color: cardColor, value: Value(number)}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{color: cardColor, value: Skip}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{color: cardColor, value: Reverse}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{color: cardColor, value: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Wild, value: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, value: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) IsWild() bool {
	return c.color == color.Wild
}

func (c Card) Actions() []action.Action {
	switch c.value {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{action.NewAddPenaltyAction(2)}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewAddPenaltyAction(4),
			action.NewPickColorAction(),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	switch c.value {
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Wild:
		return c.color.Paint("(*)")
	case WildDrawFour:
		return c.color.Paint("+4!")
	default:
		return c.color.Paintf("[%d]", int(c.value))
	}
}

// Label is the uncolored, human readable name, e.g. "red 7" or "Wild Draw Four".
func (c Card) Label() string {
	if c.IsWild() {
		return c.value.String()
	}
	return c.color.Name() + " " + c.value.String()
}
