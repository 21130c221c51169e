package entity

import "fmt"

// NoColumn marks the absence of a column (no move, no hint).
const NoColumn = -1

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Player1
	Player2
)

func (that Cell) String() string {
	switch that {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return "."
	}
}

// Turn is the seat whose move it is.
type Turn uint8

const (
	TurnPlayer1 Turn = iota
	TurnPlayer2
)

// Piece - returns the cell value dropped by this seat.
func (that Turn) Piece() Cell {
	if that == TurnPlayer2 {
		return Player2
	}
	return Player1
}

// Opponent - returns the other seat.
func (that Turn) Opponent() Turn {
	if that == TurnPlayer1 {
		return TurnPlayer2
	}
	return TurnPlayer1
}

// Seat - returns 0 for player one and 1 for player two.
func (that Turn) Seat() int {
	return int(that)
}

func (that Turn) String() string {
	if that == TurnPlayer2 {
		return "player2"
	}
	return "player1"
}

// Outcome is the terminal classification of a board.
type Outcome uint8

const (
	InProgress Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

var outcomeNames = map[Outcome]string{
	InProgress:  "in_progress",
	Player1Wins: "player1_wins",
	Player2Wins: "player2_wins",
	Draw:        "draw",
}

func (that Outcome) String() string {
	if name, ok := outcomeNames[that]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", uint8(that))
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// IsOver - reports whether the game has ended.
func (that Outcome) IsOver() bool {
	return that != InProgress
}

// WinnerOf - returns the outcome in which the owner of piece wins.
func WinnerOf(piece Cell) Outcome {
	if piece == Player2 {
		return Player2Wins
	}
	return Player1Wins
}

// Winner - returns the winning seat, false for draws and unfinished games.
func (that Outcome) Winner() (Turn, bool) {
	switch that {
	case Player1Wins:
		return TurnPlayer1, true
	case Player2Wins:
		return TurnPlayer2, true
	default:
		return TurnPlayer1, false
	}
}
