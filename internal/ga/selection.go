package ga

import "math/rand"

// TournamentSelect draws k individuals uniformly at random (with
// replacement) and returns the index of the winner by the Fitness
// comparator. k is clamped to the population size.
func TournamentSelect(pop Population, k int, rng *rand.Rand) int {
	if k > len(pop) {
		k = len(pop)
	}
	if k < 1 {
		k = 1
	}

	best := rng.Intn(len(pop))
	for i := 1; i < k; i++ {
		candidate := rng.Intn(len(pop))
		if pop[candidate].Fitness.Less(pop[best].Fitness) {
			best = candidate
		}
	}
	return best
}

// MatingPool runs size tournaments and returns the selected individuals as
// cloned copies, so offspring production never aliases the current
// generation's chromosomes.
func MatingPool(pop Population, size, k int, rng *rand.Rand) []Individual {
	pool := make([]Individual, size)
	for i := range pool {
		pool[i] = pop[TournamentSelect(pop, k, rng)].Clone()
	}
	return pool
}
