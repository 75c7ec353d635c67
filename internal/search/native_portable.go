//go:build !cuda

package search

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rawblock/groupseed-finder/internal/antishiny"
	"github.com/rawblock/groupseed-finder/pkg/models"
)

// chunkBits splits the 2^32 residual search space into 2^chunkBits
// independent chunks.
const chunkBits = 16
const chunkCount = 1 << chunkBits
const chunkSize = 1 << (32 - chunkBits)

// FindEntitySeeds searches the 2^32 candidate entity-seed space for
// every seed whose forward trait generator reproduces rec, trying up
// to maxRolls personality re-rolls and every flawless-IV count a spawn
// can use. The search runs across a worker pool bounded to the host's
// CPU count; ctx cancellation stops chunks that haven't started yet
// but lets in-flight chunks finish.
func FindEntitySeeds(ctx context.Context, rec models.Entity, maxRolls models.RollCount) ([]models.SeedCandidate, error) {
	low := lowHalf(rec.EncryptionConstant)
	widenAntiShiny := !rec.IsShiny() && antishiny.IsPotentialAntiShiny(rec.TrainerID, rec.SecretID, rec.Personality)

	snk := &sink{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for outer := 0; outer < chunkCount; outer++ {
		outer := outer
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			searchChunk(uint32(outer), low, rec, maxRolls, widenAntiShiny, snk)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snk.results, nil
}

func searchChunk(outer uint32, low uint32, rec models.Entity, maxRolls models.RollCount, widenAntiShiny bool, snk *sink) {
	base := outer << (32 - chunkBits)
	for i := uint32(0); i < chunkSize; i++ {
		upper := base + i
		seed := uint64(upper)<<32 | uint64(low)

		for r := models.RollCount(1); r <= maxRolls; r++ {
			for _, k := range flawlessCounts {
				if tryCombination(seed, r, k, rec, widenAntiShiny) {
					snk.add(models.SeedCandidate{Seed: models.EntitySeed(seed), Rolls: r})
				}
			}
		}
	}
}
