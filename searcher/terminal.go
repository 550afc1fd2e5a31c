package searcher

import "rollout/game"

// Evaluate reports whether the game is over and, if so, its value for the
// originating side: Win or Loss on checkmate, Draw otherwise. It only reads
// the state.
func Evaluate(state game.State, originIsWhite bool) (terminal bool, value int) {
	termination, value := classify(state, originIsWhite)
	return termination != game.Undecided, value
}

func classify(state game.State, originIsWhite bool) (game.Termination, int) {
	switch state.Classify() {
	case game.WhiteCheckmate:
		if originIsWhite {
			return game.Checkmate, Win
		}
		return game.Checkmate, Loss
	case game.BlackCheckmate:
		if originIsWhite {
			return game.Checkmate, Loss
		}
		return game.Checkmate, Win
	case game.Drawn:
		return game.DrawnPosition, Draw
	}
	return automaticDraw(state), Draw
}

// IsAutomaticDraw reports whether the position is drawn without any claim:
// the seventy-five move rule, fivefold repetition or insufficient material.
func IsAutomaticDraw(state game.State) bool {
	return automaticDraw(state) != game.Undecided
}

func automaticDraw(state game.State) game.Termination {
	if state.HalfMoveClock() >= NoProgressLimit {
		return game.NoProgress
	}
	if state.Repetitions() >= RepetitionLimit {
		return game.Repetition
	}
	if state.InsufficientMaterial() {
		return game.InsufficientMaterial
	}
	return game.Undecided
}
