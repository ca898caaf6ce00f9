package game

import (
	"fmt"
	"strings"
)

const (
	InfluenceMark = 'I'
	CenterMark    = 'C'
	NoEffectMark  = 'X'
)

// Grid is a card's 5x5 influence pattern, centered on the cell the card
// is placed on.
type Grid [GridSize][GridSize]byte

// Offset is a (row, col) displacement from the card's cell.
type Offset struct {
	Row int
	Col int
}

// Card is an immutable playable unit. The zero value is not a valid card;
// build cards with NewCard.
type Card struct {
	name  string
	cost  int
	value int
	grid  Grid
	owner Player
}

// NewCard validates and builds a card from its five grid lines.
func NewCard(name string, cost, value int, lines []string, owner Player) (Card, error) {
	if name == "" {
		return Card{}, &FormatError{Reason: "card name is empty"}
	}
	if cost < 0 {
		return Card{}, &FormatError{Card: name, Reason: fmt.Sprintf("cost %d is negative", cost)}
	}
	if value < 0 {
		return Card{}, &FormatError{Card: name, Reason: fmt.Sprintf("value %d is negative", value)}
	}
	if len(lines) != GridSize {
		return Card{}, &FormatError{Card: name, Reason: fmt.Sprintf("influence grid has %d lines, want %d", len(lines), GridSize)}
	}
	var grid Grid
	for i, line := range lines {
		if len(line) != GridSize {
			return Card{}, &FormatError{Card: name, Reason: fmt.Sprintf("influence grid line %q is not %d characters", line, GridSize)}
		}
		copy(grid[i][:], line)
	}
	if grid[GridSize/2][GridSize/2] != CenterMark {
		return Card{}, &FormatError{Card: name, Reason: "center of influence grid must be 'C'"}
	}
	return Card{name: name, cost: cost, value: value, grid: grid, owner: owner}, nil
}

// MustCard is NewCard for fixed card definitions; it panics on error.
func MustCard(name string, cost, value int, lines []string, owner Player) Card {
	c, err := NewCard(name, cost, value, lines, owner)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Name() string  { return c.name }
func (c Card) Cost() int     { return c.cost }
func (c Card) Value() int    { return c.value }
func (c Card) Owner() Player { return c.owner }

// Influence returns a copy of the grid as written, before any mirroring.
func (c Card) Influence() Grid { return c.grid }

// WithOwner returns the same card owned by player.
func (c Card) WithOwner(player Player) Card {
	c.owner = player
	return c
}

// Valid reports whether the card satisfies the invariants NewCard checks.
func (c Card) Valid() bool {
	return c.name != "" && c.cost >= 0 && c.value >= 0 && c.grid[GridSize/2][GridSize/2] == CenterMark
}

// Lines serializes the grid back to its five text lines.
func (c Card) Lines() []string {
	lines := make([]string, GridSize)
	for i := range c.grid {
		lines[i] = string(c.grid[i][:])
	}
	return lines
}

// InfluenceOffsets lists the cells the card influences relative to its
// own cell, in grid row-major order. Blue plays from the opposite edge so
// its pattern is mirrored horizontally.
func (c Card) InfluenceOffsets() []Offset {
	center := GridSize / 2
	var offsets []Offset
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			if c.grid[i][j] != InfluenceMark {
				continue
			}
			dc := j - center
			if c.owner == Blue {
				dc = -dc
			}
			offsets = append(offsets, Offset{Row: i - center, Col: dc})
		}
	}
	return offsets
}

func (c Card) String() string {
	return fmt.Sprintf("%s(cost=%d,value=%d,%s)", c.name, c.cost, c.value, c.owner)
}

// Equal compares every attribute, including owner.
func (c Card) Equal(other Card) bool {
	return c == other
}

func (g Grid) String() string {
	var sb strings.Builder
	for i := range g {
		sb.Write(g[i][:])
		if i < GridSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
