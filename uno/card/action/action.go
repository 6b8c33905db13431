// Package action describes the effects a card has once it lands on the discard pile.
package action

type Action interface {
	Name() string
}

// AddPenaltyAction raises the draw obligation owed by the next player.
type AddPenaltyAction struct {
	amount int
}

func NewAddPenaltyAction(amount int) Action {
	return AddPenaltyAction{amount: amount}
}

func (a AddPenaltyAction) Amount() int {
	return a.amount
}

func (a AddPenaltyAction) Name() string {
	return "add_penalty"
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (a ReverseTurnsAction) Name() string {
	return "reverse_turns"
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (a SkipTurnAction) Name() string {
	return "skip_turn"
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (a PickColorAction) Name() string {
	return "pick_color"
}
