package ga

import (
	"fmt"
	"math/rand"
	"strings"
)

// Move represents one grid step
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveRunes = [...]byte{'U', 'D', 'L', 'R'}

// Delta returns the (row, col) displacement of the move
func (m Move) Delta() (int, int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the move that undoes this one
func (m Move) Opposite() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (m Move) String() string {
	if m < Up || m > Right {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return string(moveRunes[m])
}

// RandomMove draws a uniformly random move
func RandomMove(rng *rand.Rand) Move {
	return Move(rng.Intn(4))
}

// Chromosome is a fixed-length move sequence; one candidate path
type Chromosome []Move

// NewRandomChromosome creates a chromosome of length independently random moves
func NewRandomChromosome(length int, rng *rand.Rand) Chromosome {
	c := make(Chromosome, length)
	for i := range c {
		c[i] = RandomMove(rng)
	}
	return c
}

// Clone returns an independent copy
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// String returns the compact U/D/L/R form used in artifacts and logs
func (c Chromosome) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, m := range c {
		b.WriteByte(moveRunes[m])
	}
	return b.String()
}

// ParseChromosome reads the compact U/D/L/R form back into a chromosome
func ParseChromosome(s string) (Chromosome, error) {
	c := make(Chromosome, 0, len(s))
	for i, ch := range s {
		switch ch {
		case 'U', 'u':
			c = append(c, Up)
		case 'D', 'd':
			c = append(c, Down)
		case 'L', 'l':
			c = append(c, Left)
		case 'R', 'r':
			c = append(c, Right)
		default:
			return nil, fmt.Errorf("ga: invalid move %q at position %d", ch, i)
		}
	}
	return c, nil
}
