package gltf

// base64Vals maps the standard alphabet to 0..63; every other byte,
// including '=' padding, maps to zero.
var base64Vals [256]uint32

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		base64Vals[c] = uint32(c - 'A')
	}
	for c := 'a'; c <= 'z'; c++ {
		base64Vals[c] = uint32(26 + c - 'a')
	}
	for c := '0'; c <= '9'; c++ {
		base64Vals[c] = uint32(52 + c - '0')
	}
	base64Vals['+'] = 62
	base64Vals['/'] = 63
}

// base64DecodedLen returns the output allocation for n input characters:
// ceil(n*3/4).
func base64DecodedLen(n int) int {
	return (n*3 + 3) / 4
}

// decodeBase64 decodes complete four-character groups of src into dst.
// Padding gets no special treatment; a trailing partial group is dropped.
// dst must hold at least base64DecodedLen(len(src)) bytes.
func decodeBase64(dst, src []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		a := base64Vals[src[i]]
		b := base64Vals[src[i+1]]
		c := base64Vals[src[i+2]]
		d := base64Vals[src[i+3]]

		dst[0] = byte(a<<2 | b>>4)
		dst[1] = byte(b<<4 | c>>2)
		dst[2] = byte(c<<6 | d)
		dst = dst[3:]
	}
}
