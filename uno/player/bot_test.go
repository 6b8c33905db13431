package player_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

// stack deals hands round-robin, flips starter and then draws next in order.
func stack(t *testing.T, hands [][]card.Card, starter card.Card, next ...card.Card) []card.Card {
	t.Helper()
	var pops []card.Card
	for round := 0; round < consts.StartingHandSize; round++ {
		for _, hand := range hands {
			pops = append(pops, hand[round])
		}
	}
	pops = append(pops, starter)
	pops = append(pops, next...)

	remaining := game.BuildCards()
	for _, pop := range pops {
		found := false
		for i, c := range remaining {
			if c == pop {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		require.True(t, found, "card %s used too often", pop.Label())
	}
	order := append(pops, remaining...)
	stacked := make([]card.Card, len(order))
	for i, c := range order {
		stacked[len(order)-1-i] = c
	}
	return stacked
}

func numbers(c color.Color, from int) []card.Card {
	cards := make([]card.Card, 0, consts.StartingHandSize)
	for number := from; number < from+consts.StartingHandSize; number++ {
		cards = append(cards, card.NewNumberCard(c, number))
	}
	return cards
}

var (
	botFirst   = []game.PlayerSpec{{Name: "Annie"}, {Name: "Alice", Human: true}}
	humanFirst = []game.PlayerSpec{{Name: "Alice", Human: true}, {Name: "Annie"}}
)

func TestBotPlaysFirstLegalCard(t *testing.T) {
	botHand := []card.Card{
		card.NewNumberCard(color.Green, 9), card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Red, 4),
		card.NewNumberCard(color.Yellow, 5), card.NewNumberCard(color.Yellow, 6), card.NewNumberCard(color.Yellow, 7),
		card.NewNumberCard(color.Yellow, 8),
	}
	g, err := game.New(botFirst, game.WithSeed(1),
		game.WithCards(stack(t, [][]card.Card{botHand, numbers(color.Green, 1)}, card.NewNumberCard(color.Red, 1))))
	require.NoError(t, err)

	require.NoError(t, player.NewBot().TakeTurn(g))

	require.Equal(t, card.NewNumberCard(color.Red, 3), g.Top())
	require.Len(t, g.Hand(0), 6)
	require.Equal(t, 1, g.CurrentIndex())
	require.False(t, g.AwaitingAdvance())
}

func TestBotDrawsWhenStuck(t *testing.T) {
	hands := [][]card.Card{numbers(color.Blue, 2), numbers(color.Green, 1)}

	t.Run("plays_the_drawn_card_when_it_matches", func(t *testing.T) {
		g, err := game.New(botFirst, game.WithSeed(1),
			game.WithCards(stack(t, hands, card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Red, 9))))
		require.NoError(t, err)

		require.NoError(t, player.NewBot().TakeTurn(g))

		require.Equal(t, card.NewNumberCard(color.Red, 9), g.Top())
		require.Len(t, g.Hand(0), consts.StartingHandSize)
		require.Equal(t, 1, g.CurrentIndex())
	})

	t.Run("passes_when_the_drawn_card_does_not_match", func(t *testing.T) {
		listener := event.NewDummyListener()
		g, err := game.New(botFirst, game.WithSeed(1), game.WithListener(listener),
			game.WithCards(stack(t, hands, card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Yellow, 9))))
		require.NoError(t, err)

		require.NoError(t, player.NewBot().TakeTurn(g))

		require.Equal(t, card.NewNumberCard(color.Red, 1), g.Top())
		require.Len(t, g.Hand(0), consts.StartingHandSize+1)
		require.Equal(t, 1, g.CurrentIndex())
		require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerName: "Annie"})
	})
}

func TestBotUnderPenalty(t *testing.T) {
	humanHand := []card.Card{
		card.NewDrawTwoCard(color.Red), card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Green, 2),
		card.NewNumberCard(color.Green, 3), card.NewNumberCard(color.Green, 4), card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 6),
	}

	t.Run("draws_the_penalty_then_takes_a_normal_turn", func(t *testing.T) {
		g, err := game.New(humanFirst, game.WithSeed(1), game.WithCards(stack(t,
			[][]card.Card{humanHand, numbers(color.Blue, 2)},
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Green, 9), card.NewNumberCard(color.Green, 8), card.NewNumberCard(color.Yellow, 9),
		)))
		require.NoError(t, err)
		require.NoError(t, g.PlayCard(0, 0))
		require.Equal(t, 2, g.PendingDraw())

		require.NoError(t, player.NewBot().TakeTurn(g))

		require.Zero(t, g.PendingDraw())
		require.Len(t, g.Hand(1), consts.StartingHandSize+3)
		require.Equal(t, card.NewDrawTwoCard(color.Red), g.Top())
		require.Equal(t, 0, g.CurrentIndex())
	})

	t.Run("stacks_a_matching_draw_card", func(t *testing.T) {
		botHand := append([]card.Card{card.NewDrawTwoCard(color.Red)}, numbers(color.Blue, 2)[:6]...)
		g, err := game.New(humanFirst, game.WithSeed(1), game.WithCards(stack(t,
			[][]card.Card{humanHand, botHand},
			card.NewNumberCard(color.Red, 1),
		)))
		require.NoError(t, err)
		require.NoError(t, g.PlayCard(0, 0))

		require.NoError(t, player.NewBot().TakeTurn(g))

		require.Equal(t, 4, g.PendingDraw())
		require.Len(t, g.Hand(1), consts.StartingHandSize-1)
		require.Equal(t, 0, g.CurrentIndex())
	})
}

func TestBotPicksColorForWild(t *testing.T) {
	botHand := []card.Card{
		card.NewWildCard(), card.NewNumberCard(color.Green, 2), card.NewNumberCard(color.Green, 3),
		card.NewNumberCard(color.Green, 4), card.NewNumberCard(color.Blue, 5), card.NewNumberCard(color.Blue, 6),
		card.NewNumberCard(color.Yellow, 7),
	}
	g, err := game.New(botFirst, game.WithSeed(1),
		game.WithCards(stack(t, [][]card.Card{botHand, numbers(color.Yellow, 1)}, card.NewNumberCard(color.Red, 1))))
	require.NoError(t, err)

	require.NoError(t, player.NewBot().TakeTurn(g))

	require.Equal(t, card.NewWildCard(), g.Top())
	require.Equal(t, color.Green, g.ActiveColor())
	require.Equal(t, game.PhaseAwaitingMove, g.Phase())
	require.Equal(t, 1, g.CurrentIndex())
}

func TestBotRefusesHumanTurn(t *testing.T) {
	g, err := game.New(humanFirst, game.WithSeed(1))
	require.NoError(t, err)
	require.ErrorIs(t, player.NewBot().TakeTurn(g), consts.ErrorsNotCurrentPlayer)
}

func TestPickColor(t *testing.T) {
	scenarios := []struct {
		description string
		hand        []card.Card
		expected    color.Color
	}{
		{
			description: "empty_hand",
			expected:    color.Red,
		},
		{
			description: "only_wild_cards",
			hand:        []card.Card{card.NewWildCard(), card.NewWildDrawFourCard()},
			expected:    color.Red,
		},
		{
			description: "most_frequent_color",
			hand: []card.Card{
				card.NewNumberCard(color.Blue, 1), card.NewSkipCard(color.Blue),
				card.NewNumberCard(color.Yellow, 1), card.NewWildCard(),
			},
			expected: color.Blue,
		},
		{
			description: "tie_goes_to_the_earlier_color",
			hand: []card.Card{
				card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Green, 1),
			},
			expected: color.Green,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, player.NewBot().PickColor(scenario.hand))
		})
	}
}

func TestBotsFinishRounds(t *testing.T) {
	bot := player.NewBot()
	for seed := int64(1); seed <= 20; seed++ {
		specs := make([]game.PlayerSpec, 2+int(seed)%5)
		listener := event.NewDummyListener()
		g, err := game.New(specs, game.WithSeed(seed), game.WithListener(listener))
		require.NoError(t, err)

		for turn := 0; turn < 5000 && g.Phase() != game.PhaseRoundOver; turn++ {
			require.NoError(t, bot.TakeTurn(g), "seed %d turn %d", seed, turn)
			require.Equal(t, consts.DeckSize, g.CardCount())
		}

		_, ok := g.Winner()
		require.True(t, ok, "seed %d", seed)
		for _, payload := range listener.ReceivedPayloads() {
			if penalty, isPenalty := payload.(event.PenaltyAppliedPayload); isPenalty {
				require.NotEqual(t, event.PenaltyUnoNotCalled, penalty.Reason)
			}
		}
	}
}
