package parallel

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/prrp/region"
)

// Task runs one full solution using its own private rng and returns the
// resulting partition.
type Task func(rng *rand.Rand) (region.Partition, error)

// Result pairs a solution's output with its index among the k requested
// solutions (useful for callers that want to correlate failures with a
// particular derived seed) and whatever error that solution produced.
type Result struct {
	Index     int
	Partition region.Partition
	Err       error
}

// Run executes task k times concurrently, bounded to workers simultaneous
// goroutines, each given an RNG independently derived from rootSeed. One
// task erroring does not cancel the others: every slot gets a Result,
// successful or not. Results are returned in the order workers happen to
// finish, not submission order — callers that need Index-stable output
// must sort on Result.Index themselves.
func Run(k, workers int, rootSeed int64, task Task) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > k {
		workers = k
	}

	jobs := make(chan int, k)
	for i := 0; i < k; i++ {
		jobs <- i
	}
	close(jobs)

	results := make(chan Result, k)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := DeriveRNG(rootSeed, uint64(i))
				partition, err := task(rng)
				results <- Result{Index: i, Partition: partition, Err: err}
			}
		}()
	}

	wg.Wait()
	close(results)

	out := make([]Result, 0, k)
	for r := range results {
		out = append(out, r)
	}
	return out
}
