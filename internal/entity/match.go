package entity

import "time"

// Match is the record of one finished game played by the match runner.
type Match struct {
	ID       string        `json:"id"`
	Seats    [2]Agent      `json:"seats"`
	Moves    []int         `json:"moves"`
	Outcome  Outcome       `json:"outcome"`
	Duration time.Duration `json:"duration"`
}

// Tally aggregates outcomes of a match series.
type Tally struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
	Draws       int `json:"draws"`
}

// Add - counts a finished outcome; InProgress is ignored.
func (that *Tally) Add(outcome Outcome) {
	switch outcome {
	case Player1Wins:
		that.Player1Wins++
	case Player2Wins:
		that.Player2Wins++
	case Draw:
		that.Draws++
	}
}

// Total - number of counted matches.
func (that Tally) Total() int {
	return that.Player1Wins + that.Player2Wins + that.Draws
}
