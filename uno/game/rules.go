package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may be played onto the active color and value.
// While a draw penalty is pending only draw cards of the active color, or wild draw cards,
// may be played.
func Playable(candidateCard card.Card, activeColor color.Color, activeValue card.Value, pendingDraw int) bool {
	if pendingDraw > 0 {
		return candidateCard.Value().IsDraw() &&
			(candidateCard.Color() == activeColor || candidateCard.IsWild())
	}
	if candidateCard.IsWild() {
		return true
	}
	return candidateCard.Color() == activeColor || candidateCard.Value() == activeValue
}
