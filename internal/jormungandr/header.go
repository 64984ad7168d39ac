package jormungandr

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

// HeaderFormatVersion identifies the binary block header layout DecodeHeader reads.
// Bump it together with the offsets below when the node changes its block encoding.
const HeaderFormatVersion = 1

const (
	epochOffset    = 8
	slotOffset     = 12
	parentOffset   = 52
	producerOffset = 84
	idLength       = 32

	headerLength = producerOffset + idLength
)

// DecodeHeader extracts epoch, slot, parent and producer from a raw block.
func DecodeHeader(id model.BlockID, raw []byte) (model.Block, error) {
	if len(raw) < headerLength {
		return model.Block{}, &DecodeError{
			What: fmt.Sprintf("block %s header (format v%d)", id, HeaderFormatVersion),
			Err:  fmt.Errorf("got %d bytes, need at least %d", len(raw), headerLength),
		}
	}

	return model.Block{
		ID:         id,
		Epoch:      binary.BigEndian.Uint32(raw[epochOffset:slotOffset]),
		Slot:       binary.BigEndian.Uint32(raw[slotOffset : slotOffset+4]),
		ParentID:   model.BlockID(hex.EncodeToString(raw[parentOffset : parentOffset+idLength])),
		ProducerID: hex.EncodeToString(raw[producerOffset:headerLength]),
	}, nil
}
