package textenc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDecodeUTF8Passthrough(t *testing.T) {
	in := []byte("LEAD_DATE,CAMPAIGN_NAME\n01-01-2024,Campaña")
	out, err := DecodeUTF8(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("utf-8 input should pass through unchanged")
	}
}

func TestDecodeUTF8Latin1(t *testing.T) {
	// texto en latin-1: la ñ es 0xF1, inválida como UTF-8
	latin1 := "Más allá de la región señalada, la campaña sigue señalando más regiones señaladas."
	in := make([]byte, 0, len(latin1))
	for _, r := range latin1 {
		in = append(in, byte(r))
	}
	if utf8.Valid(in) {
		t.Fatal("fixture should not be valid utf-8")
	}

	out, err := DecodeUTF8(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.Valid(out) {
		t.Fatal("output should be valid utf-8")
	}
	if !strings.Contains(string(out), "señalada") {
		t.Fatalf("decoded output lost accented text: %q", string(out))
	}
}

func TestDecodeUTF8Empty(t *testing.T) {
	out, err := DecodeUTF8(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output")
	}
}
