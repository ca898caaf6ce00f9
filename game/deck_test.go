package game

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const sampleDeck = `Security 1 2
XXXXX
XXIXX
XICIX
XXIXX
XXXXX
Bee 1 1
XXXXX
XXIXX
XXCXX
XXIXX
XXXXX
Sweeper 2 2
XXXXX
XXXXX
XICIX
XXXXX
XXXXX
`

func TestReadDeck(t *testing.T) {
	t.Run("reading a valid deck", func(t *testing.T) {
		deck, err := ReadDeck(strings.NewReader(sampleDeck), Blue)
		require.NoError(t, err)

		require.Len(t, deck, 3)
		require.Equal(t, "Security", deck[0].Name())
		require.Equal(t, 1, deck[0].Cost())
		require.Equal(t, 2, deck[0].Value())
		require.Equal(t, "Sweeper", deck[2].Name())
		for _, card := range deck {
			require.Equal(t, Blue, card.Owner())
			require.Equal(t, byte(CenterMark), card.Influence()[2][2], "Every loaded card has C at its center")
		}
	})

	t.Run("skipping blank lines between cards", func(t *testing.T) {
		input := "\nBee 1 1\nXXXXX\nXXIXX\nXXCXX\nXXIXX\nXXXXX\n\n\n"
		deck, err := ReadDeck(strings.NewReader(input), Red)
		require.NoError(t, err)
		require.Len(t, deck, 1)
	})

	t.Run("reading an empty deck", func(t *testing.T) {
		deck, err := ReadDeck(strings.NewReader(""), Red)
		require.NoError(t, err)
		require.Empty(t, deck)
	})

	cases := []struct {
		name  string
		input string
		line  int
		card  string
	}{
		{
			name:  "missing center marker",
			input: "Bee 1 1\nXXXXX\nXXIXX\nXXIXX\nXXIXX\nXXXXX\n",
			line:  1,
			card:  "Bee",
		},
		{
			name:  "header with too few fields",
			input: "Bee 1\nXXXXX\nXXIXX\nXXCXX\nXXIXX\nXXXXX\n",
			line:  1,
		},
		{
			name:  "non-integer cost",
			input: "Bee one 1\nXXXXX\nXXIXX\nXXCXX\nXXIXX\nXXXXX\n",
			line:  1,
			card:  "Bee",
		},
		{
			name:  "non-integer value",
			input: "Bee 1 x\nXXXXX\nXXIXX\nXXCXX\nXXIXX\nXXXXX\n",
			line:  1,
			card:  "Bee",
		},
		{
			name:  "short grid line",
			input: "Bee 1 1\nXXXXX\nXXIX\nXXCXX\nXXIXX\nXXXXX\n",
			line:  3,
			card:  "Bee",
		},
		{
			name:  "truncated grid",
			input: sampleDeck + "Late 1 1\nXXXXX\nXXCXX\n",
			line:  21,
			card:  "Late",
		},
	}
	for _, tc := range cases {
		t.Run("rejecting "+tc.name, func(t *testing.T) {
			_, err := ReadDeck(strings.NewReader(tc.input), Red)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			require.Equal(t, tc.line, formatErr.Line, "Error should point at the offending line")
			require.Equal(t, tc.card, formatErr.Card, "Error should name the offending card")
		})
	}
}

func TestWriteDeckRoundTrip(t *testing.T) {
	deck, err := ReadDeck(strings.NewReader(sampleDeck), Red)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, deck))

	require.Equal(t, sampleDeck, buf.String(), "Writing a loaded deck should reproduce the source byte for byte")
}

func TestLoadDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.config")
	require.NoError(t, os.WriteFile(path, []byte(sampleDeck), 0o644))

	deck, err := LoadDeck(path, Red)
	require.NoError(t, err)
	require.Len(t, deck, 3)

	_, err = LoadDeck(filepath.Join(t.TempDir(), "missing.config"), Red)
	require.Error(t, err)
}

func TestRandomDeck(t *testing.T) {
	pool, err := ReadDeck(strings.NewReader(sampleDeck), Red)
	require.NoError(t, err)

	t.Run("clamping count to the pool size", func(t *testing.T) {
		deck := RandomDeck(pool, Blue, 10, rand.New(rand.NewSource(1)))
		require.Len(t, deck, len(pool))
		require.ElementsMatch(t, names(pool), names(deck))
	})

	t.Run("sampling a subset for the owner", func(t *testing.T) {
		deck := RandomDeck(pool, Blue, 2, rand.New(rand.NewSource(1)))
		require.Len(t, deck, 2)
		for _, card := range deck {
			require.Equal(t, Blue, card.Owner())
			require.Contains(t, names(pool), card.Name())
		}
	})

	t.Run("same seed, same deck", func(t *testing.T) {
		first := RandomDeck(pool, Red, 3, rand.New(rand.NewSource(42)))
		second := RandomDeck(pool, Red, 3, rand.New(rand.NewSource(42)))
		require.Equal(t, first, second)
	})

	t.Run("leaving the pool untouched", func(t *testing.T) {
		before := append([]Card(nil), pool...)
		RandomDeck(pool, Blue, 3, rand.New(rand.NewSource(7)))
		require.Equal(t, before, pool)
	})

	t.Run("negative count gives an empty deck", func(t *testing.T) {
		require.Empty(t, RandomDeck(pool, Red, -1, nil))
	})
}

func TestRandomDeckForPlayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.config")
	require.NoError(t, os.WriteFile(path, []byte(sampleDeck), 0o644))

	deck, err := RandomDeckForPlayer(path, Blue, 99, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Len(t, deck, 3, "Deck should never be larger than the pool")
}

func names(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name()
	}
	return out
}
