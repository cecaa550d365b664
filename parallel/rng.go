package parallel

import "math/rand"

// DeriveRNG mixes rootSeed and a stream identifier into an independent
// deterministic RNG using a SplitMix64-style finalizer: small changes in
// either input produce well-diffused, decorrelated output streams, so
// worker i's RNG never shadows worker j's even though both descend from
// the same root.
func DeriveRNG(rootSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(rootSeed, stream)))
}

func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
