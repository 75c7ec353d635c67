// Package records is the ingestion boundary: it walks a directory or
// a set of in-memory buffers, hands each one to an injected decoder,
// and enforces the cohort-size bound before the core ever sees a
// record. Decoding the game's binary format itself is an external
// collaborator's job — this package never interprets entity bytes.
package records

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rawblock/groupseed-finder/pkg/models"
)

// MinCohortSize and MaxCohortSize bound how many entities the core
// pipeline will reason about at once.
const (
	MinCohortSize = 2
	MaxCohortSize = 4
)

// ErrCohortSize is returned when a directory or buffer set decodes to
// fewer than MinCohortSize or more than MaxCohortSize records.
var ErrCohortSize = errors.New("records: cohort size out of bounds [2,4]")

// Decoder turns one record's raw bytes into a models.Entity. The real
// binary format is out of this repository's scope; callers supply a
// Decoder that knows it.
type Decoder interface {
	Decode(data []byte) (models.Entity, error)
}

// ReadDirectory reads every regular file under dir, decodes it with
// dec, and returns the resulting cohort. Files the decoder rejects are
// skipped with a log line rather than aborting the whole read — a
// directory commonly holds unrelated files alongside entity records.
func ReadDirectory(dir string, dec Decoder) ([]models.Entity, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("records: reading directory %q: %w", dir, err)
	}

	buffers := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[records] skipping %q: %v", path, err)
			continue
		}
		buffers = append(buffers, data)
	}

	return ReadBuffers(buffers, dec)
}

// ReadBuffers decodes each byte slice in buffers with dec, skipping
// ones the decoder rejects, and enforces the cohort-size bound on
// what survives.
func ReadBuffers(buffers [][]byte, dec Decoder) ([]models.Entity, error) {
	cohort := make([]models.Entity, 0, len(buffers))
	for i, buf := range buffers {
		rec, err := dec.Decode(buf)
		if err != nil {
			log.Printf("[records] skipping buffer %d: %v", i, err)
			continue
		}
		cohort = append(cohort, rec)
	}

	if len(cohort) < MinCohortSize || len(cohort) > MaxCohortSize {
		return nil, fmt.Errorf("%w: got %d records", ErrCohortSize, len(cohort))
	}
	return cohort, nil
}
