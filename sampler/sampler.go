// Package sampler implements the random-sampling primitives the tree and
// forest trainers need: subsampling for honesty and bootstrap, and
// weighted/unweighted draw-without-replacement plus Poisson draws for
// candidate split-variable subsets.
package sampler

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is a per-worker random source seeded deterministically from a
// base seed plus a tree index, so runs are reproducible regardless of
// how training work is scheduled across workers.
type Sampler struct {
	rng *rand.Rand
}

// New returns a Sampler seeded from seed. Forest trainer callers derive a
// distinct seed per CI group (base seed + group index) for the group's
// subsample and per tree (base seed + tree index + 2^32) for the tree's own
// decisions, so every tree's random decisions are reproducible in isolation.
func New(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Subsample splits samples into two disjoint slices of sizes determined
// by fraction: the first holds floor(fraction*len(samples)) elements, the
// second holds the rest. Used both for the outer bootstrap subsample (J)
// and the honesty split within a tree (H).
func (s *Sampler) Subsample(samples []int, fraction float64) (first, second []int) {
	shuffled := s.shuffledCopy(samples)
	n := int(fraction * float64(len(shuffled)))
	if n > len(shuffled) {
		n = len(shuffled)
	}
	first = append([]int{}, shuffled[:n]...)
	second = append([]int{}, shuffled[n:]...)
	return first, second
}

// DrawWithoutReplacement picks n distinct indices from universe
// uniformly at random, skipping any index present in skip.
func (s *Sampler) DrawWithoutReplacement(universe []uint, n int, skip map[uint]bool) []uint {
	candidates := make([]uint, 0, len(universe))
	for _, v := range universe {
		if !skip[v] {
			candidates = append(candidates, v)
		}
	}
	s.shuffleUints(candidates)
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]uint, n)
	copy(out, candidates[:n])
	return out
}

// WeightedDrawWithoutReplacement picks n distinct indices from vars
// (parallel to weights) via weighted sampling without replacement
// (sequential cumulative-weight selection: each draw is proportional to
// remaining weight), skipping any already present in taken.
func (s *Sampler) WeightedDrawWithoutReplacement(vars []uint, weights []float64, n int, taken map[uint]bool) []uint {
	type candidate struct {
		v uint
		w float64
	}
	pool := make([]candidate, 0, len(vars))
	total := 0.0
	for i, v := range vars {
		if taken[v] {
			continue
		}
		w := weights[i]
		if w < 0 {
			w = 0
		}
		pool = append(pool, candidate{v: v, w: w})
		total += w
	}
	out := make([]uint, 0, n)
	for len(out) < n && len(pool) > 0 {
		if total <= 0 {
			// No remaining weight to discriminate on; fall back to
			// uniform choice among what's left.
			idx := s.rng.Intn(len(pool))
			out = append(out, pool[idx].v)
			pool = append(pool[:idx], pool[idx+1:]...)
			continue
		}
		target := s.rng.Float64() * total
		cum := 0.0
		idx := len(pool) - 1
		for i, c := range pool {
			cum += c.w
			if target <= cum {
				idx = i
				break
			}
		}
		out = append(out, pool[idx].v)
		total -= pool[idx].w
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

// Poisson draws a single sample from a Poisson distribution with the
// given mean, used to randomize mtry at every node per the candidate
// variable subset algorithm.
func (s *Sampler) Poisson(mean float64) int {
	p := distuv.Poisson{Lambda: mean, Src: s.rng}
	return int(p.Rand())
}

// Intn returns a uniform random int in [0, n).
func (s *Sampler) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *Sampler) shuffledCopy(samples []int) []int {
	out := append([]int{}, samples...)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *Sampler) shuffleUints(vs []uint) {
	s.rng.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
}
