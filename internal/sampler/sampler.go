package sampler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/airspacelab/deconflict/internal/interp"
	"github.com/airspacelab/deconflict/internal/mission"
)

// #region types

// RawSample is one breach observation between the primary mission and one
// other mission at a sampled instant. Samples are ephemeral: produced and
// consumed within a single check.
type RawSample struct {
	Time     float64
	Primary  mission.Position
	Other    mission.Position
	Distance float64
	FlightID string
}

// #endregion types

// #region sample

// Sample walks the primary's active window in fixed steps of timeResolution
// and records every pairwise separation below safetyBuffer (strict <).
//
// The output stream is time-major, path-minor: at a single tick, breaches
// against multiple others appear adjacent in caller-supplied order before
// the next tick's samples. The consolidator depends on exactly this
// ordering.
//
// Conflicts narrower than one step can fall between ticks; that is the
// accepted resolution/accuracy trade-off of fixed-step sampling.
//
// Pure: a fresh slice per call, no state outside the arguments.
func Sample(primary mission.Mission, others []mission.Mission, safetyBuffer, timeResolution float64) []RawSample {
	var samples []RawSample
	for t := primary.StartTime; t <= primary.EndTime; t += timeResolution {
		samples = sampleTick(samples, t, primary, others, safetyBuffer)
	}
	return samples
}

// sampleTick appends every breach observed at tick t to samples.
func sampleTick(samples []RawSample, t float64, primary mission.Mission, others []mission.Mission, safetyBuffer float64) []RawSample {
	primaryPos, ok := interp.PositionAt(primary, t)
	if !ok {
		// Only reachable at floating-point edges of the loop bounds.
		return samples
	}

	for _, other := range others {
		otherPos, ok := interp.PositionAt(other, t)
		if !ok {
			// The other mission's window does not cover t. Partial time
			// overlap between missions is handled entirely by this skip.
			continue
		}

		d := mission.Distance(primaryPos, otherPos)
		if d < safetyBuffer {
			samples = append(samples, RawSample{
				Time:     t,
				Primary:  primaryPos,
				Other:    otherPos,
				Distance: d,
				FlightID: other.ID,
			})
		}
	}
	return samples
}

// #endregion sample

// #region parallel

// SampleParallel produces the same sample stream as Sample, sharding the
// time axis across at most workers goroutines. Sampling is read-only over
// immutable mission data, so ticks are independent; the shard outputs are
// spliced back in time order, restoring the exact sequential interleaving
// the consolidator requires.
//
// The tick values themselves are generated by the same additive loop as
// Sample so the two paths agree bit-for-bit.
func SampleParallel(ctx context.Context, primary mission.Mission, others []mission.Mission, safetyBuffer, timeResolution float64, workers int) ([]RawSample, error) {
	if workers < 2 {
		return Sample(primary, others, safetyBuffer, timeResolution), nil
	}

	var ticks []float64
	for t := primary.StartTime; t <= primary.EndTime; t += timeResolution {
		ticks = append(ticks, t)
	}
	if len(ticks) == 0 {
		return nil, nil
	}
	if workers > len(ticks) {
		workers = len(ticks)
	}

	shards := make([][]RawSample, workers)
	chunk := (len(ticks) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(ticks) {
			hi = len(ticks)
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			var out []RawSample
			for _, t := range ticks[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				out = sampleTick(out, t, primary, others, safetyBuffer)
			}
			shards[w] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var samples []RawSample
	for _, shard := range shards {
		samples = append(samples, shard...)
	}
	return samples, nil
}

// #endregion parallel
