package gltf

import (
	"bytes"
	"testing"
)

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"AAECAwQFBgc=", []byte{0, 1, 2, 3, 4, 5, 6, 7, 0}},
		{"QUJDRA==", []byte{'A', 'B', 'C', 'D', 0, 0}},
		{"TWFu", []byte("Man")},
		{"AAAA", []byte{0, 0, 0}},
		{"", nil},
	}
	for _, tt := range tests {
		dst := make([]byte, base64DecodedLen(len(tt.in)))
		decodeBase64(dst, []byte(tt.in))
		if !bytes.Equal(dst, tt.want) {
			t.Errorf("decodeBase64(%q) = %v, want %v", tt.in, dst, tt.want)
		}
	}
}

func TestBase64DecodedLen(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{4, 3},
		{8, 6},
		{12, 9},
		{16, 12},
		{5, 4}, // ceil(5*3/4)
	}
	for _, tt := range tests {
		if got := base64DecodedLen(tt.n); got != tt.want {
			t.Errorf("base64DecodedLen(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestDecodeBase64PartialGroupDropped(t *testing.T) {
	// a trailing partial group produces no output bytes
	dst := make([]byte, base64DecodedLen(6))
	for i := range dst {
		dst[i] = 0xEE
	}
	decodeBase64(dst, []byte("TWFuTW"))
	if !bytes.Equal(dst[:3], []byte("Man")) {
		t.Errorf("first group = %v", dst[:3])
	}
	if dst[3] != 0xEE || dst[4] != 0xEE {
		t.Errorf("partial group should be left unwritten, got %v", dst[3:])
	}
}
