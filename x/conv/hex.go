package conv

const hexd = "0123456789ABCDEF"

// U8Hex writes 2-digit uppercase hex without 0x.
func U8Hex(buf []byte, n uint8) []byte {
	if len(buf) < 2 {
		return buf[:0]
	}
	buf[0] = hexd[n>>4]
	buf[1] = hexd[n&0xF]
	return buf[:2]
}

// Dump renders b as space-separated hex bytes, e.g. "17 0F 06 0C".
func Dump(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*3-1)
	var tmp [2]byte
	for i, v := range b {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, U8Hex(tmp[:], v)...)
	}
	return string(out)
}
