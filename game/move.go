package game

import "fmt"

// PassIndex is the hand index carried by a pass move
const PassIndex = -1

// Move places the card at HandIndex of the acting player's hand on
// (Row, Col), or passes. It only means something relative to a board.
type Move struct {
	HandIndex int  `json:"handIndex"`
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	IsPass    bool `json:"isPass"`
}

func Pass() Move {
	return Move{HandIndex: PassIndex, IsPass: true}
}

func Place(handIndex, row, col int) Move {
	return Move{HandIndex: handIndex, Row: row, Col: col}
}

func (m Move) String() string {
	if m.IsPass {
		return "pass"
	}
	return fmt.Sprintf("card %d -> (%d,%d)", m.HandIndex, m.Row, m.Col)
}
