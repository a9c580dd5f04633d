package ga

import "math/rand"

// Mutate replaces each gene independently with probability indpb by a
// fresh random move, in place. The replacement draw may reproduce the
// existing gene.
func Mutate(c Chromosome, indpb float64, rng *rand.Rand) {
	for i := range c {
		if rng.Float64() < indpb {
			c[i] = RandomMove(rng)
		}
	}
}
