package game

import "github.com/notnil/chess"

// hasMatingMaterial reports whether either side could still deliver
// checkmate. Only forced draws count as insufficient: bare kings, a single
// minor piece, or bishops that all stand on one square colour.
func hasMatingMaterial(board *chess.Board) bool {
	minors := 0
	knights := 0
	bishopColours := map[bool]bool{}
	for sq, piece := range board.SquareMap() {
		switch piece.Type() {
		case chess.King:
		case chess.Pawn, chess.Rook, chess.Queen:
			return true
		case chess.Knight:
			minors++
			knights++
		case chess.Bishop:
			minors++
			bishopColours[isLightSquare(sq)] = true
		}
	}

	if minors <= 1 {
		return false
	}
	if knights == 0 && len(bishopColours) == 1 {
		return false
	}
	return true
}

func isLightSquare(sq chess.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}
