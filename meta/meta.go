// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines minimax evaluates candidates with.
const GO_ROUTINES = 8

// Rows and Cols define the default board size. Cols must be odd.
const (
	Rows = 5
	Cols = 7
)

// HandSize is the number of cards dealt before the first turn.
const HandSize = 5

// DeckSize is the number of cards each player samples from the pool.
const DeckSize = 15

// MaxTurns caps a game that never reaches two consecutive passes.
const MaxTurns = 300
