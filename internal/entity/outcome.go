package entity

// Outcome is the state of a game derived from its board.
type Outcome struct {
	winner   Mark
	finished bool
}

func InProgress() Outcome {
	return Outcome{}
}

func Draw() Outcome {
	return Outcome{finished: true}
}

func Win(mark Mark) Outcome {
	return Outcome{winner: mark, finished: true}
}

func (that Outcome) IsOngoing() bool {
	return !that.finished
}

func (that Outcome) IsFinished() bool {
	return that.finished
}

func (that Outcome) IsDraw() bool {
	return that.finished && that.winner == EmptyCell
}

// Winner - returns EmptyCell unless a player has completed a line.
func (that Outcome) Winner() Mark {
	return that.winner
}
