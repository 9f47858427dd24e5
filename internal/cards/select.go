package cards

import "math/rand/v2"

// Select draws n photos from pool. With at least n photos they are distinct;
// otherwise photos are drawn with replacement and repeated is true.
// pool must not be empty.
func Select(pool []string, n int, rng *rand.Rand) (picks []string, repeated bool) {
	picks = make([]string, n)
	if len(pool) < n {
		for i := range picks {
			picks[i] = pool[rng.IntN(len(pool))]
		}
		return picks, true
	}
	for i, j := range rng.Perm(len(pool))[:n] {
		picks[i] = pool[j]
	}
	return picks, false
}
