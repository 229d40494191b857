package world

// Rand is the random source threaded through the world. *math/rand.Rand
// satisfies it; tests plug in seeded or scripted sources.
type Rand interface {
	Intn(n int) int
}

// randInt returns a uniformly distributed int in [min, max].
func randInt(r Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.Intn(max-min+1)
}
