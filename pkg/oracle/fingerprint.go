package oracle

import (
	"fmt"

	"github.com/sigurn/crc16"
	"github.com/sigurn/crc8"
)

var table8 = crc8.MakeTable(crc8.CRC8)
var table16 = crc16.MakeTable(crc16.CRC16_BUYPASS)

// Fingerprint - short checksum of raw table, same tables give same fingerprint
// in any language: CRC-16/BUYPASS and CRC-8 (poly 0x07)
type Fingerprint struct {
	CRC16 uint16
	CRC8  uint8
}

func Sum(b []byte) Fingerprint {
	return Fingerprint{
		CRC16: crc16.Checksum(b, table16),
		CRC8:  crc8.Checksum(b, table8),
	}
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%04X-%02X", f.CRC16, f.CRC8)
}

func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fingerprint) UnmarshalText(b []byte) error {
	_, err := fmt.Sscanf(string(b), "%04X-%02X", &f.CRC16, &f.CRC8)
	return err
}
