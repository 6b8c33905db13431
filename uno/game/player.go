package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// PlayerSpec is the setup input for one seat.
type PlayerSpec struct {
	Name  string
	Human bool
}

type Player struct {
	name  string
	human bool
	hand  *Hand
}

func newPlayer(spec PlayerSpec) *Player {
	return &Player{
		name:  spec.Name,
		human: spec.Human,
		hand:  NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Human() bool {
	return p.human
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}
