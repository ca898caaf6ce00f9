package game

// ReadOnlyBoard is the view of a board handed to strategies. No method
// mutates the board it is called on: SimulateMove always returns a new,
// independent snapshot.
type ReadOnlyBoard interface {
	Width() int
	Height() int
	// CellAt returns ErrOutOfRange for coordinates outside the board
	CellAt(row, col int) (Cell, error)
	// Hand returns a copy of the player's current hand, possibly empty
	Hand(player Player) []Card
	// Score is the player's total over the rows they win
	Score(player Player) int
	RowScore(player Player, row int) (int, error)
	IsLegalMove(player Player, move Move) bool
	// SimulateMove returns the board after player makes move, with the
	// card's influence applied. Fails with ErrOutOfRange or ErrIllegalMove.
	SimulateMove(player Player, move Move) (ReadOnlyBoard, error)
}

const (
	GridSize = 5
	MaxPawns = 3
	// MaxBoardSize bounds the rows and columns of a decoded snapshot
	MaxBoardSize = 64
)
