// Package decks bundles the default card pool.
package decks

import (
	"bytes"
	_ "embed"

	"pawnsboard/game"
)

//go:embed default.config
var defaultConfig []byte

// Default parses the bundled pool for owner.
func Default(owner game.Player) ([]game.Card, error) {
	return game.ReadDeck(bytes.NewReader(defaultConfig), owner)
}
