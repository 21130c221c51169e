package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
)

func TestParseAgentKind(t *testing.T) {
	t.Run("Known kinds", func(t *testing.T) {
		for raw, expected := range map[string]AgentKind{
			"human":       HumanAgent,
			" Random ":    RandomAgent,
			"ALPHABETA":   AlphaBetaAgent,
			"alphabeta\n": AlphaBetaAgent,
		} {
			kind, err := ParseAgentKind(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, expected, kind)
		}
	})

	t.Run("Unknown kind", func(t *testing.T) {
		// When: an unsupported agent is parsed
		kind, err := ParseAgentKind("minimax")

		// Then: ErrUnknownAgent is returned
		require.ErrorIs(t, err, apperror.ErrUnknownAgent)
		assert.Empty(t, kind)
	})
}

func TestAgent(t *testing.T) {
	assert.Equal(t, DefaultSearchDepth, Agent{Kind: AlphaBetaAgent}.SearchDepth())
	assert.Equal(t, DefaultSearchDepth, Agent{Kind: AlphaBetaAgent, Depth: -2}.SearchDepth())
	assert.Equal(t, 7, Agent{Kind: AlphaBetaAgent, Depth: 7}.SearchDepth())

	assert.Equal(t, "alphabeta(5)", Agent{Kind: AlphaBetaAgent}.String())
	assert.Equal(t, "random", Agent{Kind: RandomAgent, Depth: 3}.String())

	assert.True(t, Agent{Kind: HumanAgent}.IsHuman())
	assert.False(t, Agent{Kind: RandomAgent}.IsHuman())
}

func TestTurn(t *testing.T) {
	assert.Equal(t, TurnPlayer2, TurnPlayer1.Opponent())
	assert.Equal(t, TurnPlayer1, TurnPlayer2.Opponent())

	assert.Equal(t, Player1, TurnPlayer1.Piece())
	assert.Equal(t, Player2, TurnPlayer2.Piece())

	assert.Equal(t, 0, TurnPlayer1.Seat())
	assert.Equal(t, 1, TurnPlayer2.Seat())

	assert.Equal(t, "player1", TurnPlayer1.String())
	assert.Equal(t, "player2", TurnPlayer2.String())
}

func TestOutcome(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		winner, ok := Player2Wins.Winner()
		assert.True(t, ok)
		assert.Equal(t, TurnPlayer2, winner)

		_, ok = Draw.Winner()
		assert.False(t, ok)

		_, ok = InProgress.Winner()
		assert.False(t, ok)
	})

	t.Run("WinnerOf", func(t *testing.T) {
		assert.Equal(t, Player1Wins, WinnerOf(Player1))
		assert.Equal(t, Player2Wins, WinnerOf(Player2))
	})

	t.Run("Only in progress is not over", func(t *testing.T) {
		assert.False(t, InProgress.IsOver())
		assert.True(t, Player1Wins.IsOver())
		assert.True(t, Player2Wins.IsOver())
		assert.True(t, Draw.IsOver())
	})

	t.Run("Text form", func(t *testing.T) {
		// Given: a finished match
		match := Match{ID: "m1", Seats: [2]Agent{{Kind: HumanAgent}, {Kind: RandomAgent}}, Moves: []int{3}, Outcome: Player1Wins}

		// When: it is encoded
		raw, err := json.Marshal(match)
		require.NoError(t, err)

		// Then: the outcome is written by name
		assert.Contains(t, string(raw), `"outcome":"player1_wins"`)
		assert.Equal(t, "outcome(9)", Outcome(9).String())
	})
}

func TestTally(t *testing.T) {
	// Given: an empty tally
	var tally Tally

	// When: outcomes are added
	for _, outcome := range []Outcome{Player1Wins, Draw, Player2Wins, Player1Wins, InProgress} {
		tally.Add(outcome)
	}

	// Then: unfinished games are not counted
	assert.Equal(t, Tally{Player1Wins: 2, Player2Wins: 1, Draws: 1}, tally)
	assert.Equal(t, 4, tally.Total())
}
