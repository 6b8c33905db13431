package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Game is the turn engine of one UNO session. It is not safe for concurrent use: callers
// serialize every operation.
type Game struct {
	id      string
	players *PlayerIterator
	deck    *Deck
	pile    *Pile
	rng     *rand.Rand
	events  *event.Bus

	stacked []card.Card

	phase       Phase
	activeColor color.Color
	activeValue card.Value
	pendingDraw int
	// unoCallers holds the seats whose UNO call is in effect for this turn.
	unoCallers map[int]bool
	// skipNext makes the next turn advance hop over one extra seat.
	skipNext bool
	// played is set once the current AI player has resolved a play and only AdvanceTurn remains.
	played bool
	winner int
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithCards replaces the shuffled deck of the first round with cards, the last card being
// drawn first.
func WithCards(cards []card.Card) Option {
	return func(g *Game) {
		g.stacked = cards
	}
}

// WithListener subscribes listener before the cards are dealt.
func WithListener(listener interface{}) Option {
	return func(g *Game) {
		g.events.AddListener(listener)
	}
}

// New seats the players, deals seven cards each and flips the starting card. The first
// player opens.
func New(specs []PlayerSpec, opts ...Option) (*Game, error) {
	if len(specs) < consts.MinPlayers || len(specs) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, want %d to %d",
			consts.ErrorsGamePlayersInvalid, len(specs), consts.MinPlayers, consts.MaxPlayers)
	}
	seats := make([]PlayerSpec, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("Player %d", i+1)
		}
		seats[i] = spec
	}
	g := &Game{
		players: newPlayerIterator(seats),
		events:  event.NewBus(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := g.deal(); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart starts a new round with the same players and a freshly shuffled deck.
func (g *Game) Restart() error {
	g.stacked = nil
	return g.deal()
}

func (g *Game) deal() error {
	g.id = uuid.NewString()
	g.players.reset()
	if g.stacked != nil {
		g.deck = NewStackedDeck(g.stacked, g.rng)
	} else {
		g.deck = NewDeck(g.rng)
	}
	g.pile = NewPile()
	g.pendingDraw = 0
	g.unoCallers = make(map[int]bool)
	g.skipNext = false
	g.played = false
	g.winner = -1

	for round := 0; round < consts.StartingHandSize; round++ {
		for _, player := range g.players.players {
			dealt, err := g.deck.Draw(g.pile)
			if err != nil {
				return err
			}
			player.hand.AddCards([]card.Card{dealt})
		}
	}

	firstCard, err := g.flipFirstCard()
	if err != nil {
		return err
	}
	g.pile.Add(firstCard)
	g.activeColor = firstCard.Color()
	g.activeValue = firstCard.Value()
	g.phase = PhaseAwaitingMove

	log.Infof("game %s started with %d players, first card %s\n", g.id, g.players.Len(), firstCard.Label())
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	g.emitTurnChanged()
	return nil
}

// flipFirstCard draws until a colored card shows up; wild cards go back under the deck.
func (g *Game) flipFirstCard() (card.Card, error) {
	for attempts := g.deck.Size(); attempts > 0; attempts-- {
		drawn, err := g.deck.Draw(g.pile)
		if err != nil {
			return drawn, err
		}
		if !drawn.IsWild() {
			return drawn, nil
		}
		g.deck.PutBottom(drawn)
	}
	return card.Card{}, consts.ErrorsDeckExhausted
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Events() *event.Bus {
	return g.events
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Players returns the seats in seating order.
func (g *Game) Players() []*Player {
	players := make([]*Player, 0, g.players.Len())
	g.players.ForEach(func(_ int, player *Player) {
		players = append(players, player)
	})
	return players
}

func (g *Game) Player(index int) (*Player, bool) {
	return g.players.At(index)
}

func (g *Game) Current() *Player {
	return g.players.Current()
}

func (g *Game) CurrentIndex() int {
	return g.players.CurrentIndex()
}

// CurrentIsAI reports whether the front end has to trigger the current player's move.
func (g *Game) CurrentIsAI() bool {
	return g.phase != PhaseRoundOver && !g.players.Current().Human()
}

// Hand returns a copy of the hand at seat index, nil for an unknown seat.
func (g *Game) Hand(index int) []card.Card {
	player, ok := g.players.At(index)
	if !ok {
		return nil
	}
	return player.Hand()
}

func (g *Game) Top() card.Card {
	top, _ := g.pile.Top()
	return top
}

func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

func (g *Game) ActiveValue() card.Value {
	return g.activeValue
}

func (g *Game) PendingDraw() int {
	return g.pendingDraw
}

func (g *Game) Direction() int {
	return g.players.Direction()
}

// AwaitingAdvance is true once an AI player has finished its play and the turn waits for
// AdvanceTurn.
func (g *Game) AwaitingAdvance() bool {
	return g.played
}

// UnoCalled reports whether any player's UNO call is in effect this turn.
func (g *Game) UnoCalled() bool {
	return len(g.unoCallers) > 0
}

func (g *Game) DrawPileSize() int {
	return g.deck.Size()
}

func (g *Game) DiscardPileSize() int {
	return g.pile.Size()
}

// CardCount is the number of cards in play: draw pile, discard pile and every hand.
func (g *Game) CardCount() int {
	total := g.deck.Size() + g.pile.Size()
	g.players.ForEach(func(_ int, player *Player) {
		total += player.HandSize()
	})
	return total
}

// Winner returns the seat that emptied its hand, if the round is over.
func (g *Game) Winner() (int, bool) {
	return g.winner, g.winner >= 0
}

// IsLegalPlay applies the matching rules to c against the current active color and value.
func (g *Game) IsLegalPlay(c card.Card) bool {
	return Playable(c, g.activeColor, g.activeValue, g.pendingDraw)
}

// LegalMoves returns the hand indexes the current player may play right now.
func (g *Game) LegalMoves() []int {
	if g.phase != PhaseAwaitingMove || g.played {
		return nil
	}
	return g.players.Current().hand.PlayableIndexes(g.IsLegalPlay)
}

func (g *Game) HasLegalMove() bool {
	return len(g.LegalMoves()) > 0
}

// PlayCard plays the card at cardIndex of playerIndex's hand.
func (g *Game) PlayCard(playerIndex, cardIndex int) error {
	if err := g.checkMove(playerIndex); err != nil {
		return err
	}
	player := g.players.Current()
	playedCard, ok := player.hand.CardAt(cardIndex)
	if !ok || !g.IsLegalPlay(playedCard) {
		return consts.ErrorsIllegalMove
	}

	player.hand.RemoveAt(cardIndex)
	g.pile.Add(playedCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
		HandSize:   player.HandSize(),
	})

	if player.HandSize() == 1 && !g.calledBy(playerIndex) {
		g.penalizeUno(player)
	}
	g.clearUnoCalls()

	if player.NoCards() {
		g.finish(playerIndex)
		return nil
	}

	if !playedCard.IsWild() {
		g.activeColor = playedCard.Color()
		g.activeValue = playedCard.Value()
	}
	g.performCardActions(player, playedCard)
	if g.phase == PhaseAwaitingColorChoice {
		return nil
	}
	g.endTurn(player)
	return nil
}

// SelectColor resolves the wild card on top of the discard pile.
func (g *Game) SelectColor(chosen color.Color) error {
	if g.phase == PhaseRoundOver {
		return consts.ErrorsRoundOver
	}
	if g.phase != PhaseAwaitingColorChoice || !chosen.IsPlayable() {
		return consts.ErrorsInvalidColorChoice
	}
	player := g.players.Current()
	g.activeColor = chosen
	g.activeValue = g.Top().Value()
	g.clearUnoCalls()
	g.phase = PhaseAwaitingMove
	g.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: player.Name(),
		Color:      chosen,
	})
	g.endTurn(player)
	return nil
}

// DrawCard draws one card into the current player's hand. While a penalty is owed each draw
// pays one card of it; the turn never moves on by itself.
func (g *Game) DrawCard(playerIndex int) error {
	if err := g.checkMove(playerIndex); err != nil {
		return err
	}
	player := g.players.Current()
	drawn, err := g.deck.Draw(g.pile)
	if err != nil {
		log.Error(fmt.Errorf("game %s: %s cannot draw: %w", g.id, player.Name(), err))
		return err
	}
	player.hand.AddCards([]card.Card{drawn})
	if g.pendingDraw > 0 {
		g.pendingDraw--
	}
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName:  player.Name(),
		Cards:       []card.Card{drawn},
		PendingDraw: g.pendingDraw,
	})
	return nil
}

// PassTurn hands the turn to the next player. It is refused while a draw penalty is owed.
func (g *Game) PassTurn() error {
	if g.phase == PhaseRoundOver {
		return consts.ErrorsRoundOver
	}
	if g.phase != PhaseAwaitingMove {
		return consts.ErrorsIllegalMove
	}
	if g.pendingDraw > 0 {
		return consts.ErrorsMustResolvePenalty
	}
	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: g.players.Current().Name()})
	g.advance()
	return nil
}

// AdvanceTurn ends the current turn once an AI player's play has resolved. Human plays
// advance on their own; a player who does not play ends the turn with PassTurn.
func (g *Game) AdvanceTurn() error {
	if g.phase == PhaseRoundOver {
		return consts.ErrorsRoundOver
	}
	if g.phase != PhaseAwaitingMove || !g.played {
		return consts.ErrorsIllegalMove
	}
	g.advance()
	return nil
}

// CallUno declares UNO for playerIndex. It takes effect when the player holds one card, or
// holds two on their own turn with a card ready to play; otherwise it does nothing.
func (g *Game) CallUno(playerIndex int) error {
	player, ok := g.players.At(playerIndex)
	if !ok {
		return consts.ErrorsIllegalMove
	}
	if g.phase == PhaseRoundOver {
		return nil
	}
	switch {
	case player.HandSize() == 1:
	case player.HandSize() == 2 && playerIndex == g.players.CurrentIndex() && g.HasLegalMove():
	default:
		return nil
	}
	g.unoCallers[playerIndex] = true
	g.events.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: player.Name()})
	return nil
}

// ExtractState snapshots the table as seen from seat viewer.
func (g *Game) ExtractState(viewer int) State {
	playerSequence := make([]string, 0, g.players.Len())
	playerHandCounts := make(map[string]int, g.players.Len())
	g.players.ForEach(func(_ int, player *Player) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = player.HandSize()
	})

	state := State{
		GameID:           g.id,
		Phase:            g.phase,
		LastPlayedCard:   g.Top(),
		PlayedCards:      g.pile.Cards(),
		ActiveColor:      g.activeColor,
		ActiveValue:      g.activeValue,
		PendingDraw:      g.pendingDraw,
		Direction:        g.players.Direction(),
		CurrentPlayer:    g.players.Current().Name(),
		CurrentPlayerAI:  !g.players.Current().Human(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
		DrawPileSize:     g.deck.Size(),
		UnoCalled:        g.UnoCalled(),
	}
	if player, ok := g.players.At(viewer); ok {
		state.Viewer = player.Name()
		state.ViewerHand = player.Hand()
	}
	if winner, ok := g.players.At(g.winner); ok {
		state.Winner = winner.Name()
	}
	return state
}

func (g *Game) checkMove(playerIndex int) error {
	if g.phase == PhaseRoundOver {
		return consts.ErrorsRoundOver
	}
	if playerIndex != g.players.CurrentIndex() {
		return consts.ErrorsNotCurrentPlayer
	}
	if g.phase != PhaseAwaitingMove || g.played {
		return consts.ErrorsIllegalMove
	}
	return nil
}

func (g *Game) calledBy(playerIndex int) bool {
	return g.unoCallers[playerIndex]
}

func (g *Game) clearUnoCalls() {
	for seat := range g.unoCallers {
		delete(g.unoCallers, seat)
	}
}

func (g *Game) penalizeUno(player *Player) {
	cards, err := g.deck.DrawN(consts.UnoPenalty, g.pile)
	if err != nil {
		log.Error(fmt.Errorf("game %s: uno penalty for %s short by %d cards: %w",
			g.id, player.Name(), consts.UnoPenalty-len(cards), err))
	}
	player.hand.AddCards(cards)
	g.events.PenaltyApplied.Emit(event.PenaltyAppliedPayload{
		PlayerName: player.Name(),
		Reason:     event.PenaltyUnoNotCalled,
		Amount:     len(cards),
	})
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName:  player.Name(),
		Cards:       cards,
		PendingDraw: g.pendingDraw,
	})
}

func (g *Game) performCardActions(player *Player, playedCard card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.AddPenaltyAction:
			g.pendingDraw += cardAction.Amount()
			reason := event.PenaltyDrawTwo
			if playedCard.Value() == card.WildDrawFour {
				reason = event.PenaltyWildDrawFour
			}
			g.events.PenaltyApplied.Emit(event.PenaltyAppliedPayload{
				PlayerName:  g.players.Peek().Name(),
				Reason:      reason,
				Amount:      cardAction.Amount(),
				PendingDraw: g.pendingDraw,
			})
		case action.ReverseTurnsAction:
			g.players.Reverse()
			g.events.DirectionReversed.Emit(event.DirectionReversedPayload{
				PlayerName: player.Name(),
				Direction:  g.players.Direction(),
			})
			if g.players.Len() == 2 {
				g.skipNext = true
			}
		case action.SkipTurnAction:
			g.skipNext = true
		case action.PickColorAction:
			g.phase = PhaseAwaitingColorChoice
		}
	}
}

// endTurn advances right away for a human player; an AI turn is ended by the caller.
func (g *Game) endTurn(player *Player) {
	if player.Human() {
		g.advance()
		return
	}
	g.played = true
}

func (g *Game) advance() {
	g.clearUnoCalls()
	g.played = false
	g.players.Next()
	if g.skipNext {
		g.skipNext = false
		skipped := g.players.Current()
		g.events.PlayerSkipped.Emit(event.PlayerSkippedPayload{PlayerName: skipped.Name()})
		g.players.Next()
	}
	g.emitTurnChanged()
}

func (g *Game) emitTurnChanged() {
	current := g.players.Current()
	g.events.TurnChanged.Emit(event.TurnChangedPayload{
		PlayerIndex:  g.players.CurrentIndex(),
		PlayerName:   current.Name(),
		Human:        current.Human(),
		HasLegalMove: g.HasLegalMove(),
		PendingDraw:  g.pendingDraw,
	})
}

func (g *Game) finish(playerIndex int) {
	g.phase = PhaseRoundOver
	g.winner = playerIndex
	g.skipNext = false
	g.played = false
	winner, _ := g.players.At(playerIndex)
	log.Infof("game %s over, %s wins\n", g.id, winner.Name())
	g.events.RoundOver.Emit(event.RoundOverPayload{
		GameID: g.id,
		Winner: winner.Name(),
	})
}
