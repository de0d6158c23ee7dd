package stablerand

import (
	"encoding/binary"
	"fmt"
)

// snapshotLen is the serialized size of a generator: 624 state words plus the
// index cursor, each a little-endian uint32.
const snapshotLen = (stateWords + 1) * 4

// MarshalBinary serializes the generator so a sequence can be resumed later
// or in another process. The format is the 624 state words in order followed
// by the index cursor, each encoded as a little-endian uint32. The format
// contains no version or checksum; it is a raw state dump for
// cross-implementation portability.
func (g *MT19937) MarshalBinary() ([]byte, error) {
	if !g.seeded {
		return nil, fmt.Errorf("cannot snapshot an unseeded generator: %w", ErrInvalidState)
	}
	buf := make([]byte, snapshotLen)
	for i, w := range g.mt {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	binary.LittleEndian.PutUint32(buf[stateWords*4:], uint32(g.index))
	return buf, nil
}

// UnmarshalBinary restores a generator from a snapshot produced by
// MarshalBinary. The restored generator continues the sequence exactly where
// the snapshot was taken. Input of the wrong length or with a cursor outside
// [0, 624] fails with ErrInvalidState and leaves the generator untouched.
func (g *MT19937) UnmarshalBinary(data []byte) error {
	if len(data) != snapshotLen {
		return fmt.Errorf("snapshot must be %d bytes, got %d: %w", snapshotLen, len(data), ErrInvalidState)
	}
	cursor := binary.LittleEndian.Uint32(data[stateWords*4:])
	if cursor > stateWords {
		return fmt.Errorf("snapshot cursor %d out of range [0, %d]: %w", cursor, stateWords, ErrInvalidState)
	}
	for i := range g.mt {
		g.mt[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	g.index = int(cursor)
	g.seeded = true
	return nil
}
