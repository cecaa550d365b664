package region

import "math/rand"

// PickUniform returns a uniformly random member of s using rng. s must be
// non-empty. The set is sorted via Slice before indexing so the draw is
// reproducible for a fixed rng stream — see AreaSet.Slice's determinism
// note; every "uniform random choice" in this module goes through here
// rather than ranging a Go map directly.
func PickUniform(s AreaSet, rng *rand.Rand) AreaID {
	ids := s.Slice()
	return ids[rng.Intn(len(ids))]
}
