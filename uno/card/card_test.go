package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestActions(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    []action.Action
	}{
		{
			description: "number_card_has_no_actions",
			card:        card.NewNumberCard(color.Red, 5),
			expected:    []action.Action{},
		},
		{
			description: "skip_card_skips",
			card:        card.NewSkipCard(color.Blue),
			expected:    []action.Action{action.NewSkipTurnAction()},
		},
		{
			description: "reverse_card_reverses",
			card:        card.NewReverseCard(color.Green),
			expected:    []action.Action{action.NewReverseTurnsAction()},
		},
		{
			description: "draw_two_card_adds_two",
			card:        card.NewDrawTwoCard(color.Yellow),
			expected:    []action.Action{action.NewAddPenaltyAction(2)},
		},
		{
			description: "wild_card_picks_color",
			card:        card.NewWildCard(),
			expected:    []action.Action{action.NewPickColorAction()},
		},
		{
			description: "wild_draw_four_adds_four_before_picking_color",
			card:        card.NewWildDrawFourCard(),
			expected: []action.Action{
				action.NewAddPenaltyAction(4),
				action.NewPickColorAction(),
			},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Actions())
		})
	}
}

func TestWildCardsAreWildColored(t *testing.T) {
	require.True(t, card.NewWildCard().IsWild())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.Equal(t, color.Wild, card.NewWildDrawFourCard().Color())
	require.False(t, card.NewDrawTwoCard(color.Red).IsWild())
}

func TestLabel(t *testing.T) {
	require.Equal(t, "red 7", card.NewNumberCard(color.Red, 7).Label())
	require.Equal(t, "blue Draw Two", card.NewDrawTwoCard(color.Blue).Label())
	require.Equal(t, "Wild Draw Four", card.NewWildDrawFourCard().Label())
}

func TestValue(t *testing.T) {
	require.True(t, card.DrawTwo.IsDraw())
	require.True(t, card.WildDrawFour.IsDraw())
	require.False(t, card.Skip.IsDraw())
	require.True(t, card.Nine.IsNumber())
	require.False(t, card.Reverse.IsNumber())
	require.Equal(t, "9", card.Nine.String())
}
