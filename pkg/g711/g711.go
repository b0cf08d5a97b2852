// Package g711 - ITU-T G.711 reference codec (Sun Microsystems g711.c semantics)
// https://www.itu.int/rec/T-REC-G.711
package g711

import (
	"errors"
	"fmt"
	"strings"
)

// segment end points in the shifted (13-bit A-law, 14-bit u-law) domain
var aLawSegmentEnd = [8]int{0x1F, 0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF}
var uLawSegmentEnd = [8]int{0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF, 0x1FFF}

// search returns the first segment whose end point is not less than value,
// or len(table) if value exceeds all of them
func search(value int, table *[8]int) int {
	for i, end := range table {
		if value <= end {
			return i
		}
	}
	return len(table)
}

type Law byte

const (
	PCMU Law = iota
	PCMA
)

// RFC 3551 static payload types
const (
	PayloadTypePCMU = 0
	PayloadTypePCMA = 8
)

var ErrUnsupportedPayload = errors.New("g711: unsupported payload type")
var ErrUnknownLaw = errors.New("g711: unknown law")

func (l Law) String() string {
	switch l {
	case PCMU:
		return "PCMU"
	case PCMA:
		return "PCMA"
	}
	return fmt.Sprintf("Law(%d)", byte(l))
}

func (l Law) PayloadType() uint8 {
	if l == PCMA {
		return PayloadTypePCMA
	}
	return PayloadTypePCMU
}

func (l Law) Encode(sample int16) byte {
	if l == PCMA {
		return Linear2Alaw(sample)
	}
	return Linear2Ulaw(sample)
}

func (l Law) Decode(code byte) int16 {
	if l == PCMA {
		return Alaw2Linear(code)
	}
	return Ulaw2Linear(code)
}

func (l Law) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Law) UnmarshalText(b []byte) (err error) {
	*l, err = ParseLaw(string(b))
	return
}

func ParseLaw(s string) (Law, error) {
	switch strings.ToLower(s) {
	case "pcmu", "ulaw", "mulaw", "u":
		return PCMU, nil
	case "pcma", "alaw", "a":
		return PCMA, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLaw, s)
}

func LawFromPayloadType(pt uint8) (Law, error) {
	switch pt {
	case PayloadTypePCMU:
		return PCMU, nil
	case PayloadTypePCMA:
		return PCMA, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedPayload, pt)
}

// Laws in the order tables are dumped and verified
var Laws = []Law{PCMA, PCMU}
