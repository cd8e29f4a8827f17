package cell

import (
	"bytes"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes a cell value to its canonical msgpack form.
// Map keys are sorted so equal maps encode to equal bytes.
func Encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HashCode returns the 64-bit FNV-1a hash of the canonical encoding of value.
// It is the hash checked by RequireHashCode and tracked by UniqueHashCode.
func HashCode(value any) (uint64, error) {
	data, err := Encode(value)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(data) //nolint:errcheck // hash writes never fail
	return h.Sum64(), nil
}
