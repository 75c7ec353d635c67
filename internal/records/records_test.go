package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rawblock/groupseed-finder/pkg/models"
)

// fakeDecoder decodes a single-byte buffer into an Entity tagged with
// that byte as its encryption constant; any other length is rejected.
type fakeDecoder struct{}

func (fakeDecoder) Decode(data []byte) (models.Entity, error) {
	if len(data) != 1 {
		return models.Entity{}, errors.New("fakeDecoder: want exactly 1 byte")
	}
	return models.Entity{EncryptionConstant: uint32(data[0])}, nil
}

func TestReadBuffers_AcceptsCohortInBounds(t *testing.T) {
	buffers := [][]byte{{1}, {2}, {3}}
	got, err := ReadBuffers(buffers, fakeDecoder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
}

func TestReadBuffers_RejectsTooFew(t *testing.T) {
	_, err := ReadBuffers([][]byte{{1}}, fakeDecoder{})
	if !errors.Is(err, ErrCohortSize) {
		t.Fatalf("got err=%v, want ErrCohortSize", err)
	}
}

func TestReadBuffers_RejectsTooMany(t *testing.T) {
	buffers := [][]byte{{1}, {2}, {3}, {4}, {5}}
	_, err := ReadBuffers(buffers, fakeDecoder{})
	if !errors.Is(err, ErrCohortSize) {
		t.Fatalf("got err=%v, want ErrCohortSize", err)
	}
}

func TestReadBuffers_SkipsUndecodableBuffers(t *testing.T) {
	buffers := [][]byte{{1}, {1, 2}, {2}, {3}}
	got, err := ReadBuffers(buffers, fakeDecoder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3 (one buffer should have been skipped)", len(got))
	}
}

func TestReadDirectory_WalksRegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	for i, b := range [][]byte{{10}, {20}, {30}} {
		path := filepath.Join(dir, string(rune('a'+i)))
		if err := os.WriteFile(path, b, 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o700); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := ReadDirectory(dir, fakeDecoder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
}
