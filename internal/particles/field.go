package particles

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
)

// Field is one mounted particle field. NewField only records its shape;
// Populate draws the random specs on a separate goroutine, exactly once.
// Remounting means building a new Field.
type Field struct {
	count  int
	seed   uint64
	ranges Ranges

	once  sync.Once
	wg    conc.WaitGroup
	ready chan struct{}
	specs []Spec
}

// NewField returns an unpopulated field of n particles. A zero seed draws
// the seed from the clock at populate time.
func NewField(n int, seed uint64, rng Ranges) *Field {
	return &Field{
		count:  n,
		seed:   seed,
		ranges: rng,
		ready:  make(chan struct{}),
	}
}

// Len returns the number of particles the field will hold.
func (f *Field) Len() int {
	return f.count
}

// Populate starts generating the specs in the background. Calls after the
// first are no-ops.
func (f *Field) Populate() {
	f.once.Do(func() {
		f.wg.Go(f.generate)
	})
}

func (f *Field) generate() {
	seed := f.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f.specs = Generate(r, f.count, f.ranges)
	close(f.ready)
}

// Ready is closed once the specs are available.
func (f *Field) Ready() <-chan struct{} {
	return f.ready
}

// Wait blocks until a started Populate finishes. It returns immediately if
// Populate was never called.
func (f *Field) Wait() {
	f.wg.Wait()
}

// Specs returns a copy of the generated specs, or nil while the field is
// still unpopulated.
func (f *Field) Specs() []Spec {
	select {
	case <-f.ready:
		return slices.Clone(f.specs)
	default:
		return nil
	}
}
