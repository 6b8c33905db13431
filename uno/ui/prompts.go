package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var input = bufio.NewReader(os.Stdin)

// SetInput replaces the reader prompts read from.
func SetInput(r io.Reader) {
	input = bufio.NewReader(r)
}

type Command int

const (
	CommandPlay Command = iota + 1
	CommandDraw
	CommandPass
	CommandUno
	CommandQuit
)

// Choice is what the human decided on their turn. CardIndex indexes the hand for CommandPlay.
type Choice struct {
	Command   Command
	CardIndex int
}

// PromptString reads one trimmed line. It only fails when the input is closed.
func PromptString(message string) (string, error) {
	Println(message)
	line, err := input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptLowercaseString(message string) (string, error) {
	text, err := PromptString(message)
	return strings.ToLower(text), err
}

func promptUppercaseString(message string) (string, error) {
	text, err := PromptString(message)
	return strings.ToUpper(text), err
}

// PromptCardSelection offers the playable cards of hand plus the draw, pass, uno and quit
// commands.
func PromptCardSelection(hand []card.Card, playable []int) (Choice, error) {
	cardOptions := make(map[string]int, len(playable))
	var cardSelectionLines []string
	if len(playable) > 0 {
		cardSelectionLines = append(cardSelectionLines, "Select a card to play:")
	}
	for i, label := range labels(len(playable)) {
		cardOptions[label] = playable[i]
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", hand[playable[i]], label))
	}
	cardSelectionLines = append(cardSelectionLines, "Or enter DRAW, PASS, UNO or QUIT")
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel, err := promptUppercaseString(cardSelectionMessage)
		if err != nil {
			return Choice{}, err
		}
		switch selectedLabel {
		case "DRAW":
			return Choice{Command: CommandDraw}, nil
		case "PASS":
			return Choice{Command: CommandPass}, nil
		case "UNO":
			return Choice{Command: CommandUno}, nil
		case "QUIT":
			return Choice{Command: CommandQuit}, nil
		}
		cardIndex, found := cardOptions[selectedLabel]
		if !found {
			Printfln("%sNo card assigned to '%s'", consts.ErrorsInputInvalid, selectedLabel)
			continue
		}
		return Choice{Command: CommandPlay, CardIndex: cardIndex}, nil
	}
}

func PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := promptLowercaseString(colorMessage)
		if err != nil {
			return color.Wild, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("%sUnknown color '%s'", consts.ErrorsInputInvalid, colorName)
			continue
		}
		return chosenColor, nil
	}
}

// PromptConfirm asks a yes or no question; anything but yes counts as no.
func PromptConfirm(message string) (bool, error) {
	answer, err := promptLowercaseString(message + " (y/n)")
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "yes", nil
}

// Explain turns an engine error into the line shown to the player.
func Explain(err error) string {
	var e consts.Error
	if errors.As(err, &e) {
		return strings.TrimSpace(e.Msg)
	}
	return err.Error()
}
