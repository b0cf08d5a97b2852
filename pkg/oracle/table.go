// Package oracle - exhaustive G.711 reference tables and verification of
// third party codecs against them.
//
// Raw table formats:
//   - encode: 65536 bytes, code for every sample from -32768 to 32767
//   - decode: 256 samples in code order, 16 bit little endian (s16le)
package oracle

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/g711ref/g711ref/pkg/g711"
)

const (
	EncodeTableSize = 1 << 16
	DecodeTableSize = 1 << 8
)

type EncodeTable [EncodeTableSize]byte

type DecodeTable [DecodeTableSize]int16

var ErrTableSize = errors.New("oracle: wrong table size")

func NewEncodeTable(encode func(int16) byte) *EncodeTable {
	t := new(EncodeTable)
	for i := range t {
		t[i] = encode(SampleAt(i))
	}
	return t
}

func NewDecodeTable(decode func(byte) int16) *DecodeTable {
	t := new(DecodeTable)
	for i := range t {
		t[i] = decode(byte(i))
	}
	return t
}

// SampleAt - sample for encode table index
func SampleAt(i int) int16 {
	return int16(i - 32768)
}

func (t *EncodeTable) Lookup(sample int16) byte {
	return t[int(sample)+32768]
}

func (t *EncodeTable) Bytes() []byte {
	return t[:]
}

func (t *DecodeTable) Bytes() []byte {
	b := make([]byte, 0, DecodeTableSize*2)
	for _, sample := range t {
		b = binary.LittleEndian.AppendUint16(b, uint16(sample))
	}
	return b
}

func ParseEncodeTable(b []byte) (*EncodeTable, error) {
	if len(b) != EncodeTableSize {
		return nil, fmt.Errorf("%w: encode %d bytes, need %d", ErrTableSize, len(b), EncodeTableSize)
	}
	t := new(EncodeTable)
	copy(t[:], b)
	return t, nil
}

func ParseDecodeTable(b []byte) (*DecodeTable, error) {
	if len(b) != DecodeTableSize*2 {
		return nil, fmt.Errorf("%w: decode %d bytes, need %d", ErrTableSize, len(b), DecodeTableSize*2)
	}
	t := new(DecodeTable)
	for i := range t {
		t[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return t, nil
}

type reference struct {
	once   sync.Once
	encode *EncodeTable
	decode *DecodeTable
}

var references = map[g711.Law]*reference{
	g711.PCMA: {},
	g711.PCMU: {},
}

// Reference - tables of this package codec, built once on first use
func Reference(law g711.Law) (*EncodeTable, *DecodeTable, error) {
	ref, ok := references[law]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", g711.ErrUnknownLaw, law)
	}

	ref.once.Do(func() {
		ref.encode = NewEncodeTable(law.Encode)
		ref.decode = NewDecodeTable(law.Decode)
	})

	return ref.encode, ref.decode, nil
}
