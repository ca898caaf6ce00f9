package game

import "fmt"

// Player is one of the two sides of a game.
type Player int

const (
	Red Player = iota
	Blue
)

// Players lists both sides in turn order
var Players = [2]Player{Red, Blue}

func (p Player) Opponent() Player {
	if p == Red {
		return Blue
	}
	return Red
}

func (p Player) Valid() bool {
	return p == Red || p == Blue
}

func (p Player) String() string {
	switch p {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

func (p Player) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown player %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlayer accepts "Red"/"Blue" in any letter case.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "Red", "red", "RED":
		return Red, nil
	case "Blue", "blue", "BLUE":
		return Blue, nil
	}
	return Red, fmt.Errorf("unknown player %q", s)
}
