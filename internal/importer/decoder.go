package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
)

var (
	ErrEmptyFile = errors.New("file is empty")
	ErrNoRows    = errors.New("file contains no rows")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidate delimiters in preference order when counts tie
var delimiters = []rune{',', ';', '\t'}

// Decode turns an uploaded payload into rows of string cells.
// The delimiter is sniffed from the first line; rows may have differing field counts.
func Decode(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = SniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

// SniffDelimiter picks the delimiter occurring most often outside quotes on the first line
func SniffDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}

	counts := make(map[rune]int, len(delimiters))
	inQuotes := false
	for _, b := range line {
		r := rune(b)
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		switch r {
		case ',', ';', '\t':
			counts[r]++
		}
	}

	best := delimiters[0]
	for _, d := range delimiters[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}
