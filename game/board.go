package game

import (
	"errors"
	"fmt"
	"strings"
)

// Board is a snapshot of a game. Every operation that changes the game
// returns a new Board; the receiver is never modified, so a *Board can be
// shared with strategies as a ReadOnlyBoard.
type Board struct {
	rows  int
	cols  int
	cells []Cell    // row-major, rows*cols
	hands [2][]Card // indexed by Player
}

var _ ReadOnlyBoard = (*Board)(nil)

// NewBoard sets up the starting position: one Red pawn in every cell of
// the first column and one Blue pawn in every cell of the last column.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("board needs at least one row, got %d", rows)
	}
	if cols <= 1 || cols%2 == 0 {
		return nil, fmt.Errorf("board needs an odd number of columns greater than 1, got %d", cols)
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		b.cells[b.index(r, 0)] = PawnCell(Red, 1)
		b.cells[b.index(r, cols-1)] = PawnCell(Blue, 1)
	}
	return b, nil
}

// NewEmptyBoard builds a board with no pawns, for setting up positions
// cell by cell with WithCell.
func NewEmptyBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", rows, cols)
	}
	return &Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cellsCopy := make([]Cell, len(b.cells))
	copy(cellsCopy, b.cells)

	var handsCopy [2][]Card
	for i, hand := range b.hands {
		handCopy := make([]Card, len(hand))
		copy(handCopy, hand)
		handsCopy[i] = handCopy
	}

	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cellsCopy,
		hands: handsCopy,
	}
}

// WithHands returns a copy of the board with both hands replaced.
// Cards are re-owned to the hand's player.
func (b *Board) WithHands(red, blue []Card) *Board {
	next := b.Copy()
	next.hands[Red] = owned(red, Red)
	next.hands[Blue] = owned(blue, Blue)
	return next
}

// WithCard returns a copy of the board with card drawn into player's hand.
func (b *Board) WithCard(player Player, card Card) *Board {
	next := b.Copy()
	next.hands[player] = append(next.hands[player], card.WithOwner(player))
	return next
}

// WithCell returns a copy of the board with one cell overwritten.
func (b *Board) WithCell(row, col int, cell Cell) (*Board, error) {
	if !b.inBounds(row, col) {
		return nil, outOfRange(row, col)
	}
	if err := checkCell(cell); err != nil {
		return nil, fmt.Errorf("cell (%d,%d): %w", row, col, err)
	}
	next := b.Copy()
	next.cells[next.index(row, col)] = cell
	return next, nil
}

func (b *Board) Width() int  { return b.cols }
func (b *Board) Height() int { return b.rows }

func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.inBounds(row, col) {
		return Cell{}, outOfRange(row, col)
	}
	return b.cells[b.index(row, col)], nil
}

func (b *Board) Hand(player Player) []Card {
	if !player.Valid() {
		return []Card{}
	}
	hand := make([]Card, len(b.hands[player]))
	copy(hand, b.hands[player])
	return hand
}

func (b *Board) IsLegalMove(player Player, move Move) bool {
	return b.checkMove(player, move) == nil
}

func (b *Board) SimulateMove(player Player, move Move) (ReadOnlyBoard, error) {
	next, err := b.Play(player, move)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Play is SimulateMove returning the concrete board, for the controller
// that owns the real game.
func (b *Board) Play(player Player, move Move) (*Board, error) {
	if err := b.checkMove(player, move); err != nil {
		return nil, err
	}
	next := b.Copy()
	if move.IsPass {
		return next, nil
	}

	hand := next.hands[player]
	card := hand[move.HandIndex].WithOwner(player)
	next.hands[player] = append(hand[:move.HandIndex:move.HandIndex], hand[move.HandIndex+1:]...)
	next.cells[next.index(move.Row, move.Col)] = CardAt(card)

	for _, offset := range card.InfluenceOffsets() {
		r, c := move.Row+offset.Row, move.Col+offset.Col
		if !next.inBounds(r, c) {
			continue
		}
		i := next.index(r, c)
		next.cells[i] = next.cells[i].influence(player)
	}
	return next, nil
}

// checkMove returns nil for a legal move, ErrOutOfRange for a placement
// off the board and ErrIllegalMove otherwise.
func (b *Board) checkMove(player Player, move Move) error {
	if !player.Valid() {
		return fmt.Errorf("%w: unknown player %d", ErrIllegalMove, int(player))
	}
	if move.IsPass {
		return nil
	}
	if !b.inBounds(move.Row, move.Col) {
		return outOfRange(move.Row, move.Col)
	}
	hand := b.hands[player]
	if move.HandIndex < 0 || move.HandIndex >= len(hand) {
		return fmt.Errorf("%w: %s has no card at hand index %d", ErrIllegalMove, player, move.HandIndex)
	}
	card := hand[move.HandIndex]
	cell := b.cells[b.index(move.Row, move.Col)]
	switch cell.Kind {
	case CardCell:
		return fmt.Errorf("%w: cell (%d,%d) already holds a card", ErrIllegalMove, move.Row, move.Col)
	case Empty:
		if card.Cost() > 0 {
			return fmt.Errorf("%w: cell (%d,%d) has no pawns to pay cost %d", ErrIllegalMove, move.Row, move.Col, card.Cost())
		}
	case PawnsCell:
		if cell.Owner != player {
			return fmt.Errorf("%w: pawns on (%d,%d) belong to %s", ErrIllegalMove, move.Row, move.Col, cell.Owner)
		}
		if cell.Pawns < card.Cost() {
			return fmt.Errorf("%w: %d pawns on (%d,%d) cannot pay cost %d", ErrIllegalMove, cell.Pawns, move.Row, move.Col, card.Cost())
		}
	}
	return nil
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// String renders the board one row per line with each player's row score
// on either side, the way the game's text view shows it.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		red, _ := b.RowScore(Red, r)
		blue, _ := b.RowScore(Blue, r)
		fmt.Fprintf(&sb, "%d ", red)
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.cells[b.index(r, c)].String())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", blue)
	}
	return sb.String()
}

func owned(cards []Card, player Player) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.WithOwner(player)
	}
	return out
}

var errInvalidCell = errors.New("invalid cell")

func checkCell(cell Cell) error {
	switch cell.Kind {
	case Empty:
		return nil
	case PawnsCell:
		if cell.Pawns < 1 || cell.Pawns > MaxPawns {
			return fmt.Errorf("%w: pawn count %d outside 1..%d", errInvalidCell, cell.Pawns, MaxPawns)
		}
		if !cell.Owner.Valid() {
			return fmt.Errorf("%w: unknown pawn owner %d", errInvalidCell, int(cell.Owner))
		}
	case CardCell:
		if !cell.Card.Valid() {
			return fmt.Errorf("%w: malformed card %q", errInvalidCell, cell.Card.Name())
		}
		if cell.Owner != cell.Card.Owner() {
			return fmt.Errorf("%w: cell owner %s differs from card owner %s", errInvalidCell, cell.Owner, cell.Card.Owner())
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", errInvalidCell, int(cell.Kind))
	}
	return nil
}
