package raymarch

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

type Category uint8

const (
	catHit       Category = iota // ray converged on a surface
	catEscaped                   // nearest surface beyond the march distance
	catStepLimit                 // ran out of steps without converging
	catEmpty                     // scene has no primitives
)

var categoryNames = [...]string{
	catHit:       "hit",
	catEscaped:   "escaped",
	catStepLimit: "step_limit",
	catEmpty:     "empty_scene",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

type marchLogCache struct {
	mu     sync.Mutex
	counts map[Category]int64
}

var marchLog = &marchLogCache{
	counts: make(map[Category]int64),
}

func logMarch(c Category) {
	if !Debug {
		return
	}
	marchLog.mu.Lock()
	marchLog.counts[c]++
	marchLog.mu.Unlock()
}

// MarchStats returns how many rays ended in each category since the last reset.
// Only populated when Debug is set.
func MarchStats() map[string]int64 {
	marchLog.mu.Lock()
	defer marchLog.mu.Unlock()
	out := make(map[string]int64, len(marchLog.counts))
	for c, n := range marchLog.counts {
		out[c.String()] = n
	}
	return out
}

func ResetMarchStats() {
	marchLog.mu.Lock()
	marchLog.counts = make(map[Category]int64)
	marchLog.mu.Unlock()
}

func DumpMarchStats(w io.Writer) {
	stats := MarchStats()
	names := make([]string, 0, len(stats))
	for k := range stats {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "Ray type %s: %d rays\n", k, stats[k])
	}
}
