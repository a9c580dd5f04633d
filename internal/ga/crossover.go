package ga

import "math/rand"

// TwoPointCrossover swaps the middle segment [i,j) between two parents of
// equal length and returns two mirrored children: the first keeps parent
// a's outer genes, the second keeps parent b's. The cut points are drawn
// uniformly over all distinct pairs 0 < i < j < len: the first draw ranges
// over [1,len-1], the second over [1,len-2] and is bumped past the first
// on collision, which keeps every pair equally likely. Parents are not
// modified. Requires len >= 3.
func TwoPointCrossover(a, b Chromosome, rng *rand.Rand) (Chromosome, Chromosome) {
	length := len(a)
	i := 1 + rng.Intn(length-1)
	j := 1 + rng.Intn(length-2)
	if j >= i {
		j++
	} else {
		i, j = j, i
	}

	c1 := a.Clone()
	c2 := b.Clone()
	copy(c1[i:j], b[i:j])
	copy(c2[i:j], a[i:j])
	return c1, c2
}
