package ga

import "math/rand"

// reduce cancels adjacent opposite moves in a single left-to-right pass,
// treating the output as a stack: a move that is the exact opposite of the
// stack top pops it instead of being pushed. "U D D" reduces to "D" because
// U cancels the first D and the second D survives.
func reduce(c Chromosome) Chromosome {
	out := make(Chromosome, 0, len(c))
	for _, m := range c {
		if n := len(out); n > 0 && out[n-1] == m.Opposite() {
			out = out[:n-1]
			continue
		}
		out = append(out, m)
	}
	return out
}

// Simplify cancels adjacent opposite moves and re-pads the result with
// random moves back to the given length. Applied after every crossover and
// mutation so offspring never waste genes walking in place.
func Simplify(c Chromosome, length int, rng *rand.Rand) Chromosome {
	out := reduce(c)
	for len(out) < length {
		out = append(out, RandomMove(rng))
	}
	return out
}
