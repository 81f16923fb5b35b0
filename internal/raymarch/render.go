package raymarch

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Band is a half-open column range [Start, End) owned by one worker.
type Band struct {
	Start, End int
}

// Bands splits width columns into threads contiguous bands of width/threads columns.
// The last band absorbs the remainder so the whole width is covered exactly once.
func Bands(width, threads int) []Band {
	if threads < 1 {
		threads = 1
	}
	bw := width / threads
	bands := make([]Band, threads)
	for t := range threads {
		start := t * bw
		end := start + bw
		if t == threads-1 {
			end = width
		}
		bands[t] = Band{Start: start, End: end}
	}
	return bands
}

// RenderFrame marches one ray per cell of size and writes the shaded result into sink.
// It runs cfg.Threads workers, one per column band, and returns only when all of them
// are done. A worker panic (for example a write outside the sink) fails the whole frame.
// scene is shared read-only by the workers and must not change until RenderFrame returns.
func RenderFrame(scene *Scene, size Size, sink Sink, cfg Config) error {
	bands := Bands(size.W, cfg.Threads)
	var locks *shardLocks
	if UseLocks {
		locks = &shardLocks{}
	}
	cam := scene.Camera

	var g errgroup.Group
	for wid, b := range bands {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("render worker %d (columns %d-%d): %v", wid, b.Start, b.End, r)
				}
			}()
			renderBand(scene, cam, size, sink, cfg, b, locks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		DebugLog("Frame %dx%d failed: %v", size.W, size.H, err)
		return err
	}
	return nil
}

func renderBand(scene *Scene, cam Camera, size Size, sink Sink, cfg Config, b Band, locks *shardLocks) {
	for px := b.Start; px < b.End; px++ {
		for py := 0; py < size.H; py++ {
			glyph, fg := scene.Trace(GenerateRay(cam, size, px, py), cfg)
			writeCell(sink, locks, px, py, glyph, fg)
		}
	}
}

func writeCell(sink Sink, locks *shardLocks, x, y int, glyph rune, fg Color) {
	if locks == nil {
		sink.Set(x, y, glyph, fg)
		return
	}
	locks.lock(y)
	defer locks.unlock(y)
	sink.Set(x, y, glyph, fg)
}
