// Package finder drives the three reversal stages per cohort entity
// and returns the first group seed the validator confirms.
package finder

import (
	"context"
	"log"

	"github.com/rawblock/groupseed-finder/internal/reverse"
	"github.com/rawblock/groupseed-finder/internal/search"
	"github.com/rawblock/groupseed-finder/internal/solver"
	"github.com/rawblock/groupseed-finder/internal/validate"
	"github.com/rawblock/groupseed-finder/pkg/models"
)

// FindGroupSeed walks the cohort entity by entity: for each, it
// recovers candidate entity seeds (search), reverses each to its
// generator seeds (solver) and group seeds (reverse), and asks the
// validator whether that group seed's forward simulation matches the
// whole cohort under modes. The first confirmed group seed short-
// circuits the remaining entities; an early match at i=0 avoids ever
// reversing entity 1..N-1, which is why the outer loop runs over
// entities instead of in parallel across them.
//
// records must already satisfy the cohort-size bound (2-4 entities);
// callers normally get that bound enforced by internal/records.
func FindGroupSeed(ctx context.Context, records []models.Entity, maxRolls models.RollCount, modes models.SpawnerMode) (models.FinderResult, bool) {
	ecs := make([]uint32, len(records))
	for i, r := range records {
		ecs[i] = r.EncryptionConstant
	}

	for i, rec := range records {
		candidates, err := search.FindEntitySeeds(ctx, rec, maxRolls)
		if err != nil {
			log.Printf("[finder] entity %d search aborted: %v", i, err)
			return models.FinderResult{}, false
		}

		for _, sc := range candidates {
			for _, gen := range solver.SolveGenSeeds(sc.Seed) {
				groupSeed := reverse.GroupSeedFromGenSeed(gen)
				if validate.ValidateGroupSeed(groupSeed, ecs, i, modes) {
					return models.FinderResult{GroupSeed: groupSeed, FirstIndex: i}, true
				}
			}
		}
	}

	return models.FinderResult{}, false
}
