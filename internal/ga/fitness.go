package ga

import "fmt"

// Fitness is the two-objective score of a chromosome. Both components are
// minimized and are never aggregated into a single scalar.
type Fitness struct {
	// Navigation scores collisions, distance to goal, exploration, and
	// redundant revisits (lower is better)
	Navigation float64
	// PathLength is the number of steps consumed when the goal was reached,
	// or the full chromosome length when it was not
	PathLength int
}

// Less compares fitnesses lexicographically: Navigation first, PathLength
// as the tie-break. This is the single comparator used by tournament
// selection, elitism, and best-ever tracking.
func (f Fitness) Less(other Fitness) bool {
	if f.Navigation != other.Navigation {
		return f.Navigation < other.Navigation
	}
	return f.PathLength < other.PathLength
}

func (f Fitness) String() string {
	return fmt.Sprintf("(nav=%.1f len=%d)", f.Navigation, f.PathLength)
}

// Individual pairs a chromosome with its evaluated fitness
type Individual struct {
	Chromosome Chromosome
	Fitness    Fitness
}

// Clone returns an independent copy of the individual
func (ind Individual) Clone() Individual {
	return Individual{
		Chromosome: ind.Chromosome.Clone(),
		Fitness:    ind.Fitness,
	}
}

// Population is one generation's ordered set of evaluated individuals
type Population []Individual

// Best returns the index of the best individual by the Fitness comparator
func (p Population) Best() int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i].Fitness.Less(p[best].Fitness) {
			best = i
		}
	}
	return best
}

// NavigationStats holds aggregate navigation-score statistics for a generation
type NavigationStats struct {
	Best float64
	Avg  float64
	Min  float64
	Max  float64
}

// Stats computes navigation-score aggregates across the population.
// Best is reported by the full comparator; Min/Max/Avg are over the
// navigation objective alone.
func (p Population) Stats() NavigationStats {
	if len(p) == 0 {
		return NavigationStats{}
	}
	s := NavigationStats{
		Best: p[p.Best()].Fitness.Navigation,
		Min:  p[0].Fitness.Navigation,
		Max:  p[0].Fitness.Navigation,
	}
	sum := 0.0
	for _, ind := range p {
		nav := ind.Fitness.Navigation
		sum += nav
		if nav < s.Min {
			s.Min = nav
		}
		if nav > s.Max {
			s.Max = nav
		}
	}
	s.Avg = sum / float64(len(p))
	return s
}
