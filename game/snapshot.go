package game

import "fmt"

// Snapshot is the JSON form of a board.
type Snapshot struct {
	Rows  int              `json:"rows"`
	Cols  int              `json:"cols"`
	Cells [][]CellSnapshot `json:"cells"`
	Red   []CardSnapshot   `json:"red"`
	Blue  []CardSnapshot   `json:"blue"`
}

type CellSnapshot struct {
	Kind  string        `json:"kind"` // "empty", "pawns" or "card"
	Pawns int           `json:"pawns,omitempty"`
	Owner Player        `json:"owner"`
	Card  *CardSnapshot `json:"card,omitempty"`
}

type CardSnapshot struct {
	Name      string   `json:"name"`
	Cost      int      `json:"cost"`
	Value     int      `json:"value"`
	Influence []string `json:"influence"`
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:  b.rows,
		Cols:  b.cols,
		Cells: make([][]CellSnapshot, b.rows),
		Red:   cardSnapshots(b.hands[Red]),
		Blue:  cardSnapshots(b.hands[Blue]),
	}
	for r := 0; r < b.rows; r++ {
		s.Cells[r] = make([]CellSnapshot, b.cols)
		for c := 0; c < b.cols; c++ {
			cell := b.cells[b.index(r, c)]
			cs := CellSnapshot{Kind: cell.Kind.String(), Owner: cell.Owner}
			switch cell.Kind {
			case PawnsCell:
				cs.Pawns = cell.Pawns
			case CardCell:
				card := cardSnapshot(cell.Card)
				cs.Card = &card
			}
			s.Cells[r][c] = cs
		}
	}
	return s
}

// FromSnapshot validates s and builds the board it describes.
// The shape is checked before any cells are allocated.
func FromSnapshot(s Snapshot) (*Board, error) {
	if s.Rows <= 0 || s.Rows > MaxBoardSize || s.Cols <= 0 || s.Cols > MaxBoardSize {
		return nil, fmt.Errorf("snapshot dimensions %dx%d outside 1..%d", s.Rows, s.Cols, MaxBoardSize)
	}
	if len(s.Cells) != s.Rows {
		return nil, fmt.Errorf("snapshot has %d cell rows, want %d", len(s.Cells), s.Rows)
	}
	for r, row := range s.Cells {
		if len(row) != s.Cols {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d", r, len(row), s.Cols)
		}
	}

	b, err := NewEmptyBoard(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}
	for r, row := range s.Cells {
		for c, cs := range row {
			cell, err := cs.cell()
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			if err := checkCell(cell); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			b.cells[b.index(r, c)] = cell
		}
	}
	if b.hands[Red], err = cardsFromSnapshots(s.Red, Red); err != nil {
		return nil, fmt.Errorf("red hand: %w", err)
	}
	if b.hands[Blue], err = cardsFromSnapshots(s.Blue, Blue); err != nil {
		return nil, fmt.Errorf("blue hand: %w", err)
	}
	return b, nil
}

func (cs CellSnapshot) cell() (Cell, error) {
	switch cs.Kind {
	case "", "empty":
		return EmptyCell(), nil
	case "pawns":
		return PawnCell(cs.Owner, cs.Pawns), nil
	case "card":
		if cs.Card == nil {
			return Cell{}, fmt.Errorf("card cell without a card")
		}
		card, err := cs.Card.card(cs.Owner)
		if err != nil {
			return Cell{}, err
		}
		return CardAt(card), nil
	default:
		return Cell{}, fmt.Errorf("unknown cell kind %q", cs.Kind)
	}
}

func (cs CardSnapshot) card(owner Player) (Card, error) {
	return NewCard(cs.Name, cs.Cost, cs.Value, cs.Influence, owner)
}

func cardSnapshot(c Card) CardSnapshot {
	return CardSnapshot{Name: c.Name(), Cost: c.Cost(), Value: c.Value(), Influence: c.Lines()}
}

func cardSnapshots(cards []Card) []CardSnapshot {
	out := make([]CardSnapshot, len(cards))
	for i, c := range cards {
		out[i] = cardSnapshot(c)
	}
	return out
}

func cardsFromSnapshots(snapshots []CardSnapshot, owner Player) ([]Card, error) {
	cards := make([]Card, 0, len(snapshots))
	for _, cs := range snapshots {
		card, err := cs.card(owner)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
