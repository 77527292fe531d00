package world

// Source produces uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// uniformInt returns a uniform integer in [low, high).
func uniformInt(src Source, low, high int) int {
	return low + src.Intn(high-low)
}
