package connectk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

func TestScorePosition(t *testing.T) {
	cases := []struct {
		name      string
		winLength int
		rows      []string
		player1   int
		player2   int
	}{
		{
			name:      "Empty board is neutral",
			winLength: 4,
			rows:      []string{".......", ".......", ".......", ".......", ".......", "......."},
			player1:   0,
			player2:   0,
		},
		{
			name:      "Center column bonus",
			winLength: 4,
			rows:      []string{".......", ".......", ".......", ".......", ".......", "...X..."},
			player1:   3,
			player2:   0,
		},
		{
			name:      "Three in a row scores half windows and a threat penalty",
			winLength: 4,
			rows:      []string{".......", ".......", ".......", ".......", ".......", "XXX...."},
			player1:   10,
			player2:   -4,
		},
		{
			name:      "Blocked windows score nothing",
			winLength: 4,
			rows:      []string{".......", ".......", ".......", ".......", "...O...", "XXXO..."},
			player1:   0,
			player2:   11,
		},
		{
			name:      "Complete window",
			winLength: 4,
			rows:      []string{"....", "....", "....", "XXXX"},
			player1:   103,
			player2:   -4,
		},
		{
			name:      "Small board with mixed windows",
			winLength: 3,
			rows:      []string{"...", ".X.", "OXO"},
			player1:   16,
			player2:   10,
		},
		{
			name:      "Single piece on a win length two board",
			winLength: 2,
			rows:      []string{"..", "X."},
			player1:   15,
			player2:   0,
		},
		{
			name:      "Empty windows count as half windows for win length one",
			winLength: 1,
			rows:      []string{"..", "X."},
			player1:   460,
			player2:   44,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a board
			board, err := FromRows(tc.winLength, tc.rows...)
			require.NoError(t, err)

			// When: the position is scored for both players
			player1 := ScorePosition(board, entity.TurnPlayer1)
			player2 := ScorePosition(board, entity.TurnPlayer2)

			// Then: the scores match
			assert.Equal(t, tc.player1, player1, "player1")
			assert.Equal(t, tc.player2, player2, "player2")
		})
	}
}

func TestScorePosition_MirrorSymmetry(t *testing.T) {
	// Given: a position and its left-right mirror image
	board := mustBoard(t, 4,
		".......",
		".......",
		".......",
		"..O....",
		".XXO...",
		"XOXXO..",
	)
	mirror := mustBoard(t, 4,
		".......",
		".......",
		".......",
		"....O..",
		"...OXX.",
		"..OXXOX",
	)

	// Then: both players score the same on either board
	assert.Equal(t, ScorePosition(board, entity.TurnPlayer1), ScorePosition(mirror, entity.TurnPlayer1))
	assert.Equal(t, ScorePosition(board, entity.TurnPlayer2), ScorePosition(mirror, entity.TurnPlayer2))
}
