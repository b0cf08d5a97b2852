package g711

const (
	bias = 0x84 // 132 or 1000 0100
	clip = 8159 // max magnitude after >> 2
)

// Linear2Ulaw - 16 bit linear PCM to u-law.
// Only the 14 most significant bits are used, negative samples use plain negation.
func Linear2Ulaw(pcm int16) byte {
	var mask byte

	value := int(pcm) >> 2 // arithmetic shift, sign preserved

	if value < 0 {
		value = -value
		mask = 0x7F
	} else {
		mask = 0xFF
	}

	if value > clip {
		value = clip
	}

	value += bias >> 2

	seg := search(value, &uLawSegmentEnd)
	if seg >= 8 {
		return 0x7F ^ mask // out of range, return maximum value
	}

	uval := byte(seg<<4) | byte(value>>(seg+1))&0x0F

	return uval ^ mask
}

// Ulaw2Linear - u-law to 16 bit linear PCM. Both zero codes (0x7F, 0xFF) give 0.
func Ulaw2Linear(ulaw byte) int16 {
	ulaw = ^ulaw

	t := (int(ulaw&0x0F) << 3) + bias
	t <<= (ulaw & 0x70) >> 4

	// sign
	if ulaw&0x80 != 0 {
		return int16(bias - t)
	}
	return int16(t - bias)
}
