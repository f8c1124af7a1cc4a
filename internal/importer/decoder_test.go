package importer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Comma(t *testing.T) {
	data := []byte("Date,Description,Amount\n2024-03-15,\"COFFEE, KADIKOY\",-45.00\n2024-03-16,RENT,-15000\n")

	rows, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, rows[0])
	assert.Equal(t, "COFFEE, KADIKOY", rows[1][1])
}

func TestDecode_SemicolonWithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Tarih;Açıklama;Tutar\n15.03.2024;MIGROS;-1.204,10\n")...)

	rows, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Tarih", rows[0][0])
	assert.Equal(t, "-1.204,10", rows[1][2])
}

func TestDecode_Tab(t *testing.T) {
	rows, err := Decode([]byte("date\tdesc\tamount\n2024-03-15\tSPOTIFY\t-59.99\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SPOTIFY", rows[1][1])
}

func TestDecode_RaggedRows(t *testing.T) {
	rows, err := Decode([]byte("a,b,c\n1,2\n1,2,3,4\n"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 4)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = Decode([]byte("  \n\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rune
	}{
		{"comma", "a,b,c", ','},
		{"semicolon", "a;b;c", ';'},
		{"tab", "a\tb\tc", '\t'},
		{"quoted commas ignored", "\"x,y,z\";b;c", ';'},
		{"no delimiter defaults to comma", "single", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffDelimiter([]byte(tt.line)))
		})
	}
}

func TestDecode_BankExport(t *testing.T) {
	data, err := os.ReadFile("../../testdata/garanti_2024q1.csv")
	require.NoError(t, err)

	rows, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, rows, 11)
	assert.Equal(t, "Referans", rows[0][4])
}
