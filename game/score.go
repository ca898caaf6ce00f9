package game

// RowScore sums the values of the cards player owns in row.
func (b *Board) RowScore(player Player, row int) (int, error) {
	if row < 0 || row >= b.rows {
		return 0, outOfRange(row, 0)
	}
	total := 0
	for c := 0; c < b.cols; c++ {
		cell := b.cells[b.index(row, c)]
		if cell.Kind == CardCell && cell.Owner == player {
			total += cell.Card.Value()
		}
	}
	return total, nil
}

// Score adds up player's row score over every row where it is strictly
// higher than the opponent's. Tied rows score for nobody.
func (b *Board) Score(player Player) int {
	opponent := player.Opponent()
	total := 0
	for r := 0; r < b.rows; r++ {
		own, _ := b.RowScore(player, r)
		other, _ := b.RowScore(opponent, r)
		if own > other {
			total += own
		}
	}
	return total
}

// Winner compares total scores. ok is false on a draw.
func Winner(b ReadOnlyBoard) (winner Player, ok bool) {
	red, blue := b.Score(Red), b.Score(Blue)
	switch {
	case red > blue:
		return Red, true
	case blue > red:
		return Blue, true
	default:
		return Red, false
	}
}
