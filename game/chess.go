package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// Position is a chess State backed by github.com/notnil/chess.
type Position struct {
	pos     *chess.Position
	clock   int      // Half-moves since the last capture or pawn move
	history []string // Repetition keys since the last irreversible move, current last
}

// ParseFEN decodes a position in Forsyth-Edwards Notation.
func ParseFEN(fen string) (*Position, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, fen, err)
	}
	p := &Position{pos: chess.NewGame(option).Position()}
	key, clock, err := positionKey(p.pos)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrParse, fen, err)
	}
	p.clock = clock
	p.history = []string{key}
	return p, nil
}

// positionKey returns the repetition key (placement, side, castling, en
// passant) and the half-move clock of pos. The en passant square only counts
// when a capture on it is legal.
func positionKey(pos *chess.Position) (string, int, error) {
	fields := strings.Fields(pos.String())
	if len(fields) < 5 {
		return "", 0, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return "", 0, fmt.Errorf("half-move clock: %w", err)
	}
	if fields[3] != "-" && !hasEnPassantCapture(pos) {
		fields[3] = "-"
	}
	return strings.Join(fields[:4], " "), clock, nil
}

func hasEnPassantCapture(pos *chess.Position) bool {
	for _, m := range pos.ValidMoves() {
		if m.HasTag(chess.EnPassant) {
			return true
		}
	}
	return false
}

func (p *Position) WhiteToMove() bool {
	return p.pos.Turn() == chess.White
}

func (p *Position) Classify() Classification {
	switch p.pos.Status() {
	case chess.Checkmate:
		// The side to move is the one checkmated
		if p.WhiteToMove() {
			return BlackCheckmate
		}
		return WhiteCheckmate
	case chess.Stalemate:
		return Drawn
	default:
		return NotTerminal
	}
}

func (p *Position) HalfMoveClock() int {
	return p.clock
}

// Repetitions counts the occurrences of the current position, itself included.
func (p *Position) Repetitions() int {
	current := p.history[len(p.history)-1]
	count := 0
	for _, key := range p.history {
		if key == current {
			count++
		}
	}
	return count
}

// InsufficientMaterial reports whether checkmate is impossible for both
// sides under any sequence of moves.
func (p *Position) InsufficientMaterial() bool {
	return !hasMatingMaterial(p.pos.Board())
}

func (p *Position) LegalMoves() []Move {
	valid := p.pos.ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves
}

// Play applies a move generated from this exact position.
func (p *Position) Play(move Move) error {
	m, ok := move.(*chess.Move)
	if !ok {
		return fmt.Errorf("%w: unexpected move type %T", ErrIllegalMove, move)
	}
	legal := p.find(m)
	if legal == nil {
		return fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, p.FEN())
	}

	next := p.pos.Update(legal)
	key, clock, err := positionKey(next)
	if err != nil {
		return fmt.Errorf("update position after %s: %w", m, err)
	}
	if clock == 0 { // Earlier positions can no longer repeat
		p.history = p.history[:0]
	}
	p.pos = next
	p.clock = clock
	p.history = append(p.history, key)
	return nil
}

func (p *Position) find(m *chess.Move) *chess.Move {
	for _, v := range p.pos.ValidMoves() {
		if v == m || (v.S1() == m.S1() && v.S2() == m.S2() && v.Promo() == m.Promo()) {
			return v
		}
	}
	return nil
}

// ParseMove resolves a move in coordinate notation (e.g. "c7b7", "e7e8q").
func (p *Position) ParseMove(uci string) (Move, error) {
	m, err := chess.UCINotation{}.Decode(p.pos, uci)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrIllegalMove, uci, err)
	}
	legal := p.find(m)
	if legal == nil {
		return nil, fmt.Errorf("%w %q in %s", ErrIllegalMove, uci, p.FEN())
	}
	return legal, nil
}

// Clone returns a deep copy that may be used from another goroutine.
func (p *Position) Clone() State {
	// chess.Position caches its move list lazily, so clones must not share one
	option, err := chess.FEN(p.pos.String())
	if err != nil {
		panic(fmt.Sprintf("cannot reload own position %s: %v", p.pos, err))
	}
	history := make([]string, len(p.history), cap(p.history))
	copy(history, p.history)
	return &Position{pos: chess.NewGame(option).Position(), clock: p.clock, history: history}
}

func (p *Position) FEN() string {
	return p.pos.String()
}

func (p *Position) String() string {
	return p.FEN()
}
