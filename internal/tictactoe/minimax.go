package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

const (
	// MaxScore is the score of a finished game won by X; O's win scores -MaxScore.
	// Halving it once per ply stays non-zero across the nine plies of a full game.
	MaxScore = 1024

	// NoMove is returned in place of a cell when the board is already finished.
	NoMove = -1
)

// BestMove - runs an exhaustive minimax search for the player to move.
//
// The score is positive when X can force a win, negative when O can, and zero
// for a forced draw. Each ply halves the score (arithmetic shift, rounding
// toward negative infinity), so a faster win outranks a slower one and a slower
// loss outranks a faster one. Among equally scored moves the lowest cell wins.
// The caller's board is never modified.
func BestMove(board entity.Board) (int, int) {
	switch outcome := board.Outcome(); {
	case outcome.IsDraw():
		return NoMove, 0
	case outcome.Winner() == entity.MarkX:
		return NoMove, MaxScore
	case outcome.Winner() == entity.MarkO:
		return NoMove, -MaxScore
	}

	mover := board.PlayerToMove()

	bestCell, bestScore := NoMove, 0
	for _, cell := range board.EmptyCells() {
		child := board
		child[cell] = mover

		_, score := BestMove(child)
		if bestCell == NoMove || isBetter(mover, score, bestScore) {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, bestScore >> 1
}

// isBetter reports a strict improvement for mover, so ties keep the earlier cell.
func isBetter(mover entity.Mark, score, best int) bool {
	if mover == entity.MarkX {
		return score > best
	}

	return score < best
}
