package searcher

// Outcome values relative to the side to move when a rollout starts
const (
	Win  = 1
	Draw = 0
	Loss = -1
)

// Automatic draw thresholds. These fire only when the draw is forced, so a
// random playout never has to claim one.
const (
	NoProgressLimit = 150 // Half-moves without a capture or pawn move (75 full moves)
	RepetitionLimit = 5   // Occurrences of the same position
)
