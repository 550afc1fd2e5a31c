package game

import "errors"

var (
	// ErrParse is returned when a position descriptor cannot be decoded.
	ErrParse = errors.New("malformed position")
	// ErrIllegalMove is returned when a move was not generated from the state it is played on.
	ErrIllegalMove = errors.New("illegal move")
)

// Classification is the base terminal status of a position, as decided by the rules engine.
type Classification int

const (
	NotTerminal    Classification = iota
	WhiteCheckmate                // White has checkmated black
	BlackCheckmate                // Black has checkmated white
	Drawn                         // Stalemate or any other drawn position
)

func (c Classification) String() string {
	switch c {
	case NotTerminal:
		return "not terminal"
	case WhiteCheckmate:
		return "white checkmate"
	case BlackCheckmate:
		return "black checkmate"
	case Drawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Move is only produced by State.LegalMoves and only consumed by State.Play.
type Move interface {
	String() string
}

// State is a mutable two player game position. Moves are applied in place.
type State interface {
	WhiteToMove() bool
	Classify() Classification
	HalfMoveClock() int
	Repetitions() int
	InsufficientMaterial() bool
	LegalMoves() []Move
	Play(Move) error
	Clone() State
}

// Termination is the reason a game ended.
type Termination int

const (
	Undecided Termination = iota
	Checkmate
	DrawnPosition        // Stalemate or another draw reported by Classify
	NoProgress           // Automatic draw by the seventy-five move rule
	Repetition           // Automatic draw by fivefold repetition
	InsufficientMaterial // Automatic draw, no side can checkmate
	NumTerminations
)

func (t Termination) String() string {
	switch t {
	case Undecided:
		return "undecided"
	case Checkmate:
		return "checkmate"
	case DrawnPosition:
		return "drawn_position"
	case NoProgress:
		return "no_progress"
	case Repetition:
		return "repetition"
	case InsufficientMaterial:
		return "insufficient_material"
	default:
		return "unknown"
	}
}
