package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

// ReadDeck parses a deck: per card, a header line "NAME COST VALUE"
// followed by five lines of five influence characters. Every card is owned
// by owner. Unlike a strict header-per-line reader, blank lines between
// cards are accepted and skipped, so hand-edited pools may space cards out.
func ReadDeck(r io.Reader, owner Player) ([]Card, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return scanner.Text(), true
	}

	deck := []Card{}
	for {
		header, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(header) == "" {
			continue
		}
		headerLine := lineNo

		// Parse the header: name, cost and value
		parts := strings.Fields(header)
		if len(parts) != 3 {
			return nil, &FormatError{Line: headerLine, Reason: fmt.Sprintf("invalid card header %q", header)}
		}
		name := parts[0]
		cost, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, &FormatError{Line: headerLine, Card: name, Reason: fmt.Sprintf("invalid cost %q", parts[1])}
		}
		value, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, &FormatError{Line: headerLine, Card: name, Reason: fmt.Sprintf("invalid value %q", parts[2])}
		}

		// Read the 5x5 influence grid
		lines := make([]string, 0, GridSize)
		for i := 0; i < GridSize; i++ {
			line, ok := next()
			if !ok {
				return nil, &FormatError{Line: lineNo, Card: name, Reason: fmt.Sprintf("influence grid ends after %d lines", i)}
			}
			if len(line) != GridSize {
				return nil, &FormatError{Line: lineNo, Card: name, Reason: fmt.Sprintf("influence grid line %q is not %d characters", line, GridSize)}
			}
			lines = append(lines, line)
		}

		card, err := NewCard(name, cost, value, lines, owner)
		if err != nil {
			var formatErr *FormatError
			if errors.As(err, &formatErr) {
				formatErr.Line = headerLine
			}
			return nil, err
		}
		deck = append(deck, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return deck, nil
}

// LoadDeck reads a deck file for owner.
func LoadDeck(path string, owner Player) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	deck, err := ReadDeck(f, owner)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return deck, nil
}

// WriteDeck writes cards in the format ReadDeck accepts.
func WriteDeck(w io.Writer, cards []Card) error {
	bw := bufio.NewWriter(w)
	for _, card := range cards {
		if _, err := fmt.Fprintf(bw, "%s %d %d\n", card.Name(), card.Cost(), card.Value()); err != nil {
			return fmt.Errorf("failed to write card %s: %w", card.Name(), err)
		}
		for _, line := range card.Lines() {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return fmt.Errorf("failed to write card %s: %w", card.Name(), err)
			}
		}
	}
	return bw.Flush()
}

// NewRand returns a generator seeded from the clock, for callers that do
// not need reproducible draws.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// RandomDeck shuffles a copy of pool and returns up to count cards owned
// by owner. A nil rng is seeded from the clock.
func RandomDeck(pool []Card, owner Player, count int, rng *rand.Rand) []Card {
	if rng == nil {
		rng = NewRand()
	}
	deck := owned(pool, owner)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	count = max(0, min(count, len(deck)))
	return deck[:count]
}

// RandomDeckForPlayer loads the shared card pool at path and samples up to
// count cards from it for owner.
func RandomDeckForPlayer(path string, owner Player, count int, rng *rand.Rand) ([]Card, error) {
	pool, err := LoadDeck(path, owner)
	if err != nil {
		return nil, err
	}
	return RandomDeck(pool, owner, count, rng), nil
}
