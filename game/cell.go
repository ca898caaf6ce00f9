package game

import "fmt"

type CellKind int

const (
	Empty CellKind = iota
	PawnsCell
	CardCell
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case PawnsCell:
		return "pawns"
	case CardCell:
		return "card"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// Cell is the content of one board position. Pawns and Owner are
// meaningful for pawn cells, Card for card cells (Owner mirrors the
// card's owner there).
type Cell struct {
	Kind  CellKind
	Pawns int
	Owner Player
	Card  Card
}

func EmptyCell() Cell {
	return Cell{Kind: Empty}
}

func PawnCell(owner Player, pawns int) Cell {
	return Cell{Kind: PawnsCell, Pawns: pawns, Owner: owner}
}

func CardAt(card Card) Cell {
	return Cell{Kind: CardCell, Owner: card.Owner(), Card: card}
}

// influence applies one influence mark from player to the cell.
func (c Cell) influence(player Player) Cell {
	switch c.Kind {
	case Empty:
		return PawnCell(player, 1)
	case PawnsCell:
		if c.Owner != player {
			return PawnCell(player, c.Pawns)
		}
		return PawnCell(player, min(c.Pawns+1, MaxPawns))
	default:
		return c
	}
}

func (c Cell) String() string {
	switch c.Kind {
	case PawnsCell:
		return fmt.Sprintf("%d%c", c.Pawns, c.Owner.String()[0])
	case CardCell:
		return fmt.Sprintf("%s:%d", c.Owner.String()[:1], c.Card.Value())
	default:
		return "_"
	}
}
