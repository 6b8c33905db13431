package game

type PlayerIterator struct {
	players []*Player
	cycler  *Cycler
}

func newPlayerIterator(specs []PlayerSpec) *PlayerIterator {
	players := make([]*Player, 0, len(specs))
	for _, spec := range specs {
		players = append(players, newPlayer(spec))
	}
	return &PlayerIterator{
		players: players,
		cycler:  NewCycler(len(players)),
	}
}

func (i *PlayerIterator) At(index int) (*Player, bool) {
	if index < 0 || index >= len(i.players) {
		return nil, false
	}
	return i.players[index], true
}

func (i *PlayerIterator) Current() *Player {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

// ForEach visits every player in seat order.
func (i *PlayerIterator) ForEach(function func(index int, player *Player)) {
	for index, player := range i.players {
		function(index, player)
	}
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Next() *Player {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Peek() *Player {
	return i.players[i.cycler.Peek()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) reset() {
	i.cycler.Reset()
	for _, player := range i.players {
		player.hand.clear()
	}
}
