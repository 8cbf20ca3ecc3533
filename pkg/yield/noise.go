package yield

import (
	"math/rand/v2"
	"sync"
	"time"
)

// NoiseSource supplies the random perturbation for yield and confidence.
// Implementations must be safe for concurrent use.
type NoiseSource interface {
	Uniform(lo, hi float64) float64
}

type lockedNoise struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededNoise returns a reproducible source; calls are serialized.
func NewSeededNoise(seed uint64) NoiseSource {
	return &lockedNoise{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewNoise returns a source seeded from the clock.
func NewNoise() NoiseSource { return NewSeededNoise(uint64(time.Now().UnixNano())) }

func (n *lockedNoise) Uniform(lo, hi float64) float64 {
	n.mu.Lock()
	f := n.r.Float64()
	n.mu.Unlock()
	return lo + f*(hi-lo)
}

// FixedNoise always lands at the same fraction of the requested interval:
// 0 gives lo, 1 gives hi, 0.5 the midpoint.
type FixedNoise float64

func (f FixedNoise) Uniform(lo, hi float64) float64 { return lo + float64(f)*(hi-lo) }
