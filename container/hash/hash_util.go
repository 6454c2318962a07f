package hash

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"

	"github.com/ryogrid/cqbase/types"
)

/** @return the hash of the value */
func HashValue(val *types.Value) uint32 {
	return GenHashMurMur(val.Serialize())
}

// HashValues hashes an ordered value sequence. Each value is length prefixed
// so that ("ab", "c") and ("a", "bc") do not collide trivially.
func HashValues(vals []types.Value) uint32 {
	input_bytes := make([]byte, 0)
	lenBuf := make([]byte, 4)
	for _, val := range vals {
		raw := val.Serialize()
		binary.LittleEndian.PutUint32(lenBuf, uint32(len(raw)))
		input_bytes = append(input_bytes, lenBuf...)
		input_bytes = append(input_bytes, raw...)
	}
	return GenHashMurMur(input_bytes)
}

func GenHashMurMur(key []byte) uint32 {
	h := murmur3.New128()
	h.Write(key)
	hash := h.Sum(nil)
	return binary.LittleEndian.Uint32(hash)
}
