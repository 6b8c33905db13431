package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

var errQuit = errors.New("quit")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, io.EOF) {
		log.Error(err)
		if consts.IsExit(err) {
			os.Exit(1)
		}
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ui.Delay = cfg.Delay
	ui.Print(msg.Message.Welcome())

	name := cfg.PlayerName
	if name == "" {
		name, err = ui.PromptString("What's your name?")
		if err != nil {
			return err
		}
	}
	if name == "" {
		name = "Player 1"
	}

	rng := rand.New(rand.NewSource(cfg.SeedOrNow()))
	specs, err := player.CreatePlayers(cfg.PlayerCount, name, cfg.BotNames, rng)
	if err != nil {
		return err
	}
	g, err := game.New(specs, game.WithRand(rng), game.WithListener(msg.NewRenderer(ui.Output, name)))
	if err != nil {
		return err
	}

	for {
		if err := playRound(g); err != nil {
			return err
		}
		again, err := ui.PromptConfirm("Play again?")
		if err != nil || !again {
			return err
		}
		if err := g.Restart(); err != nil {
			return err
		}
	}
}

func playRound(g *game.Game) error {
	bot := player.NewBot()
	for g.Phase() != game.PhaseRoundOver {
		if g.CurrentIsAI() {
			if err := bot.TakeTurn(g); err != nil {
				log.Error(fmt.Errorf("game %s abandoned: %w", g.ID(), err))
				return nil
			}
			continue
		}
		if err := humanTurn(g); err != nil {
			return err
		}
	}
	return nil
}

func humanTurn(g *game.Game) error {
	seat := g.CurrentIndex()
	if g.Phase() == game.PhaseAwaitingColorChoice {
		chosen, err := ui.PromptColor()
		if err != nil {
			return err
		}
		return report(g.SelectColor(chosen))
	}

	ui.Println(g.ExtractState(seat))
	choice, err := ui.PromptCardSelection(g.Hand(seat), g.LegalMoves())
	if err != nil {
		return err
	}
	switch choice.Command {
	case ui.CommandPlay:
		return report(g.PlayCard(seat, choice.CardIndex))
	case ui.CommandDraw:
		return report(g.DrawCard(seat))
	case ui.CommandPass:
		return report(g.PassTurn())
	case ui.CommandUno:
		return report(g.CallUno(seat))
	default:
		return errQuit
	}
}

// report shows a refused move to the player; only errors that end the program are returned.
func report(err error) error {
	if err == nil || consts.IsExit(err) {
		return err
	}
	ui.Println(ui.Explain(err))
	return nil
}
