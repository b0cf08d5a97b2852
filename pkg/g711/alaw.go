package g711

const (
	alawSign     = 0x80
	alawQuant    = 0x0F
	alawSegMask  = 0x70
	alawSegShift = 4
)

// Linear2Alaw - 16 bit linear PCM to A-law.
// Only the 13 most significant bits are used, negative samples keep
// one's complement magnitude (-v - 1), so -1 and 0 share a segment.
func Linear2Alaw(pcm int16) byte {
	var mask byte

	value := int(pcm) >> 3 // arithmetic shift, sign preserved

	if value >= 0 {
		mask = 0xD5 // sign (7th) bit = 1
	} else {
		mask = 0x55 // sign bit = 0
		value = -value - 1
	}

	seg := search(value, &aLawSegmentEnd)
	if seg >= 8 {
		return 0x7F ^ mask // out of range, return maximum value
	}

	aval := byte(seg << alawSegShift)
	if seg < 2 {
		aval |= byte(value>>1) & alawQuant
	} else {
		aval |= byte(value>>seg) & alawQuant
	}

	return aval ^ mask
}

// Alaw2Linear - A-law to 16 bit linear PCM, the middle of the quantization interval
func Alaw2Linear(alaw byte) int16 {
	alaw ^= 0x55

	t := int(alaw&alawQuant) << 4
	seg := int(alaw&alawSegMask) >> alawSegShift

	switch seg {
	case 0:
		t += 8
	case 1:
		t += 0x108
	default:
		t += 0x108
		t <<= seg - 1
	}

	// sign
	if alaw&alawSign != 0 {
		return int16(t)
	}
	return int16(-t)
}
