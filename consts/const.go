package consts

import (
	"errors"
	"time"
)

const (
	DeckSize         = 108
	StartingHandSize = 7
	UnoPenalty       = 2

	MinPlayers = 2
	// MaxPlayers keeps 7-card hands for everyone within the 108-card deck with room to draw.
	MaxPlayers = 10

	DefaultPlayers = 4
	DefaultDelay   = 1 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsExit reports whether err carries an Error that ends the program.
func IsExit(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Exit
}

var (
	ErrorsIllegalMove        = NewErr(1, false, "Illegal move. ")
	ErrorsMustResolvePenalty = NewErr(2, false, "You must play a draw card or draw the penalty! ")
	ErrorsInvalidColorChoice = NewErr(3, false, "Invalid color choice. ")
	ErrorsNotCurrentPlayer   = NewErr(4, false, "Not your turn. ")
	ErrorsDeckExhausted      = NewErr(5, false, "Deck exhausted. ")
	ErrorsRoundOver          = NewErr(6, false, "Round is over. ")
	ErrorsGamePlayersInvalid = NewErr(7, true, "Game players invalid. ")
	ErrorsInputInvalid       = NewErr(8, false, "Input invalid. ")
)
