package misc

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"encoding/gob"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
)

// NoCopy may be embedded into structs which must not be copied after first
// use.  go vet's copylocks check reports violations.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

func EncodeToBytes(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(data); err != nil {
		return nil, errors.Wrap(err, "can not encode")
	}
	return buf.Bytes(), nil
}

func DecodeFromBytes(data []byte, a any) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(a); err != nil {
		return errors.Wrap(err, "can not decode")
	}
	return nil
}

// WriteFrame writes b prefixed by its length as a big endian uint32.
func WriteFrame(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return errors.New("could not write all data")
	}
	return nil
}

// ReadFrames splits data written by successive WriteFrame calls.
func ReadFrames(data []byte) ([][]byte, error) {
	var frames [][]byte
	reader := bytes.NewReader(data)
	for reader.Len() > 0 {
		var length uint32
		if err := binary.Read(reader, binary.BigEndian, &length); err != nil {
			return nil, errors.Wrap(err, "can not read frame length")
		}
		content := make([]byte, length)
		if _, err := io.ReadFull(reader, content); err != nil {
			return nil, errors.Wrap(err, "can not read frame")
		}
		frames = append(frames, content)
	}
	return frames, nil
}

func CopyBytes(a []byte) []byte {
	b := make([]byte, len(a))
	copy(b, a)
	return b
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
