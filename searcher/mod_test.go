package searcher

import (
	"errors"
	"fmt"
	"rollout/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("move%d", m.id)
}

// mockState ends with classification once plies moves have been played.
type mockState struct {
	white          bool
	classification game.Classification
	clock          int
	repetitions    int
	insufficient   bool
	moves          []game.Move
	plies          int
	played         []game.Move
	playErr        error
	queried        []string
}

func (m *mockState) WhiteToMove() bool {
	return m.white
}

func (m *mockState) Classify() game.Classification {
	m.queried = append(m.queried, "classify")
	if len(m.played) < m.plies {
		return game.NotTerminal
	}
	return m.classification
}

func (m *mockState) HalfMoveClock() int {
	m.queried = append(m.queried, "clock")
	return m.clock
}

func (m *mockState) Repetitions() int {
	m.queried = append(m.queried, "repetitions")
	return m.repetitions
}

func (m *mockState) InsufficientMaterial() bool {
	m.queried = append(m.queried, "material")
	return m.insufficient
}

func (m *mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m *mockState) Play(move game.Move) error {
	if m.playErr != nil {
		return m.playErr
	}
	m.played = append(m.played, move)
	m.white = !m.white
	return nil
}

func (m *mockState) Clone() game.State {
	clone := *m
	clone.played = append([]game.Move(nil), m.played...)
	clone.queried = nil
	return &clone
}

var errEngine = errors.New("engine failure")
