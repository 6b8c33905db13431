package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Phase int

const (
	PhaseAwaitingMove Phase = iota + 1
	PhaseAwaitingColorChoice
	PhaseRoundOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMove:
		return "awaiting move"
	case PhaseAwaitingColorChoice:
		return "awaiting color choice"
	case PhaseRoundOver:
		return "round over"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a game as seen by one player.
type State struct {
	GameID           string
	Phase            Phase
	LastPlayedCard   card.Card
	PlayedCards      []card.Card
	ActiveColor      color.Color
	ActiveValue      card.Value
	PendingDraw      int
	Direction        int
	CurrentPlayer    string
	CurrentPlayerAI  bool
	Viewer           string
	ViewerHand       []card.Card
	PlayerSequence   []string
	PlayerHandCounts map[string]int
	DrawPileSize     int
	Winner           string
	UnoCalled        bool
}

// Status is the one line summary shown above the table.
func (s State) Status() string {
	if s.Phase == PhaseRoundOver {
		return fmt.Sprintf("Game over - %s wins!", s.Winner)
	}
	status := fmt.Sprintf("%s's turn", s.CurrentPlayer)
	if s.CurrentPlayerAI && s.Phase != PhaseAwaitingColorChoice {
		status += " (AI)"
	}
	if s.PendingDraw > 0 {
		status += fmt.Sprintf(" - %d cards to draw", s.PendingDraw)
	}
	return status
}

func (s State) String() string {
	var lines []string
	lines = append(lines, s.Status())
	lines = append(lines, fmt.Sprintf("Last played card: %s, active color: %s", s.LastPlayedCard, s.ActiveColor))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction == left {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.ViewerHand))

	return strings.Join(lines, "\n")
}
