package core

import (
	"encoding/binary"
	"hash/maphash"
)

var fingerprintSeed = maphash.MakeSeed()

// Configuration is the joint position of every agent at one timestep: an
// immutable sequence of vertex ids indexed by agent id.
type Configuration []VertexID

// NewConfiguration copies locs into a new Configuration.
func NewConfiguration(locs []VertexID) Configuration {
	c := make(Configuration, len(locs))
	copy(c, locs)
	return c
}

// Equal reports whether two configurations hold equal sequences.
func (c Configuration) Equal(other Configuration) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Fingerprint is a pure, stable hash of the configuration's sequence,
// used as the sole EXPLORED deduplication key.
func (c Configuration) Fingerprint() uint64 {
	var h maphash.Hash
	h.SetSeed(fingerprintSeed)
	var buf [8]byte
	for _, v := range c {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Clone returns an independent copy of c, or nil if c is nil.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	return NewConfiguration(c)
}
