package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedInput marca archivos ilegibles o sin columnas requeridas; aborta el run.
var ErrMalformedInput = errors.New("malformed input file")

type csvTable struct {
	idx  map[string]int
	rows [][]string
}

func readCSV(name string, data []byte, required ...string) (*csvTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, name, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrMalformedInput, name)
	}
	idx := make(map[string]int, len(all[0]))
	for i, h := range all[0] {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s: missing required column %q", ErrMalformedInput, name, col)
		}
	}
	return &csvTable{idx: idx, rows: all[1:]}, nil
}

func (t *csvTable) get(row []string, col string) string {
	i, ok := t.idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// atoiOr0 es el null-fill a 0 de las columnas numéricas.
func atoiOr0(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// atoiPtr distingue "ausente" de 0 para el código de región.
func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// normDate normaliza una fecha DD-MM-YYYY; fecha ilegible es fatal.
func normDate(name, s string) (string, error) {
	d, err := time.Parse("02-01-2006", s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: bad date %q", ErrMalformedInput, name, s)
	}
	return d.Format("02-01-2006"), nil
}
