package dsv

import (
	"strings"
	"sync"
)

// builderPool recycles output builders across Stringify calls. Rendering is
// the only allocation-heavy path in the package, and callers tend to write
// many tables with one configuration.
var builderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// getBuilder gets a reset builder from the pool.
func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// putBuilder returns a builder to the pool unless it has grown unreasonably.
func putBuilder(b *strings.Builder) {
	const maxCapacity = 1 << 20
	if b.Cap() > maxCapacity {
		return
	}
	builderPool.Put(b)
}
