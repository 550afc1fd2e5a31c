package searcher

import (
	"fmt"
	"rollout/game"

	"golang.org/x/exp/rand"
)

// RolloutFEN parses a position and plays it out with the shared generator.
func RolloutFEN(fen string) (int, error) {
	state, err := game.ParseFEN(fen)
	if err != nil {
		return 0, err
	}
	return Rollout(state)
}

// Rollout plays uniformly random legal moves until the game ends and returns
// Win, Draw or Loss for the side to move in state. The state is mutated in
// place and holds the terminal position afterwards; clone it first to keep
// the starting position.
func Rollout(state game.State) (int, error) {
	value, _, _, err := rollout(state, shared)
	return value, err
}

// RolloutWith is Rollout drawing moves from r.
func RolloutWith(state game.State, r *rand.Rand) (int, error) {
	value, _, _, err := rollout(state, r)
	return value, err
}

func rollout(state game.State, r *rand.Rand) (value int, plies int, termination game.Termination, err error) {
	originIsWhite := state.WhiteToMove()
	for {
		termination, value = classify(state, originIsWhite)
		if termination != game.Undecided {
			return value, plies, termination, nil
		}

		moves := state.LegalMoves()
		if len(moves) == 0 {
			panic(fmt.Sprintf("no legal moves in a non-terminal position %v", state))
		}

		move := moves[r.Intn(len(moves))] // Random rollout policy
		if err := state.Play(move); err != nil {
			return 0, plies, game.Undecided, fmt.Errorf("play %s: %w", move, err)
		}
		plies++
	}
}
