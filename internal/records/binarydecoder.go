package records

import (
	"encoding/binary"
	"fmt"

	"github.com/rawblock/groupseed-finder/pkg/models"
)

// recordSize is the fixed width of one ReferenceDecoder record: the
// §3.1 fields packed little-endian in declaration order.
const recordSize = 26

// ReferenceDecoder decodes the fixed-width little-endian layout this
// repository ships as a standalone default. The actual game's binary
// format is an external collaborator's concern (see package doc); this
// type exists so cmd/finder has something concrete to run against
// without that collaborator.
type ReferenceDecoder struct{}

// Decode implements Decoder.
func (ReferenceDecoder) Decode(data []byte) (models.Entity, error) {
	if len(data) != recordSize {
		return models.Entity{}, fmt.Errorf("records: want %d bytes, got %d", recordSize, len(data))
	}

	var e models.Entity
	e.EncryptionConstant = binary.LittleEndian.Uint32(data[0:4])
	e.Personality = binary.LittleEndian.Uint32(data[4:8])
	e.TrainerID = binary.LittleEndian.Uint16(data[8:10])
	e.SecretID = binary.LittleEndian.Uint16(data[10:12])
	copy(e.IVs[:], data[12:18])
	e.FlawlessIVCount = data[18]
	e.AbilityNumber = data[19]
	e.Gender = data[20]
	e.GenderRatio = data[21]
	e.Nature = data[22]
	e.IsAlpha = data[23] != 0
	e.HeightScalar = data[24]
	e.WeightScalar = data[25]

	return e, nil
}
