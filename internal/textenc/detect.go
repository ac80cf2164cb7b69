package textenc

import (
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// DecodeUTF8 detecta el charset del archivo y lo convierte a UTF-8.
// Entrada ya válida en UTF-8 pasa tal cual.
func DecodeUTF8(data []byte) ([]byte, error) {
	if len(data) == 0 || utf8.Valid(data) {
		return data, nil
	}
	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("charset detection: %w", err)
	}
	enc, err := ianaindex.IANA.Encoding(best.Charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("charset %q not supported", best.Charset)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", best.Charset, err)
	}
	return out, nil
}
