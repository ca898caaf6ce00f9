package strategy

import "pawnsboard/game"

// LegalMoves lists player's legal placements in hand order, then row-major
// cell order, followed by the pass move, which is always legal.
func LegalMoves(b game.ReadOnlyBoard, player game.Player) []game.Move {
	hand := b.Hand(player)
	moves := make([]game.Move, 0, len(hand)*b.Width()*b.Height()+1)
	for i := range hand {
		for row := 0; row < b.Height(); row++ {
			for col := 0; col < b.Width(); col++ {
				move := game.Place(i, row, col)
				if b.IsLegalMove(player, move) {
					moves = append(moves, move)
				}
			}
		}
	}
	return append(moves, game.Pass())
}
