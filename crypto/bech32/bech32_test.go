package bech32

import (
	"bytes"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14}

	enc, err := Encode("remit", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	hrp, got, err := Decode(string(enc))
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "remit" {
		t.Fatalf("unexpected prefix: %q", hrp)
	}
	if !bytes.Equal(payload, got) {
		t.Fatalf("payload mismatch: %X", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("this is not bech32"); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}
