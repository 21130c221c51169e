package connectk

import "github.com/rocketscienceinc/connectk-backend/internal/entity"

const (
	centerWeight    = 3
	completeWindow  = 100
	halfWindow      = 5
	pairWindow      = 2
	opponentThreat  = -4
	threatNumerator = 3 // opponent threat when opp >= 3/4 of the window
	threatDivisor   = 4
)

// ScorePosition - static evaluation of the board from the point of view of turn's piece.
// Only meaningful for non-terminal positions at the search horizon.
func ScorePosition(board *Board, turn entity.Turn) int {
	own := turn.Piece()
	opp := turn.Opponent().Piece()

	score := 0

	center := board.cols / 2
	for row := 0; row < board.rows; row++ {
		if board.at(row, center) == own {
			score += centerWeight
		}
	}

	for row := 0; row < board.rows; row++ {
		for col := 0; col < board.cols; col++ {
			for _, dir := range directions {
				if !board.fits(row, col, dir) {
					continue
				}
				score += scoreWindow(board, row, col, dir, own, opp)
			}
		}
	}

	return score
}

// scoreWindow - scores the winLength cells starting at (row, col) along dir.
func scoreWindow(board *Board, row, col int, dir direction, own, opp entity.Cell) int {
	var ownCount, oppCount int
	for i := 0; i < board.winLength; i++ {
		switch board.at(row+i*dir.dRow, col+i*dir.dCol) {
		case own:
			ownCount++
		case opp:
			oppCount++
		}
	}

	k := board.winLength
	switch {
	case oppCount == 0 && ownCount == k:
		return completeWindow
	case oppCount == 0 && ownCount >= k/2:
		return halfWindow
	case oppCount == 0 && ownCount > 1:
		return pairWindow
	case ownCount == 0 && oppCount*threatDivisor >= threatNumerator*k:
		return opponentThreat
	default:
		return 0
	}
}
