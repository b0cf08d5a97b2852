package g711

// Alaw2Ulaw - A-law to u-law through linear PCM
func Alaw2Ulaw(alaw byte) byte {
	return Linear2Ulaw(Alaw2Linear(alaw))
}

// Ulaw2Alaw - u-law to A-law through linear PCM
func Ulaw2Alaw(ulaw byte) byte {
	return Linear2Alaw(Ulaw2Linear(ulaw))
}

// Transcode - code of one law to code of another, passthrough for same law
func Transcode(dst, src Law, code byte) byte {
	if dst == src {
		return code
	}
	return dst.Encode(src.Decode(code))
}
