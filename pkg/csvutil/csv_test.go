package csvutil

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmitsBOMAndCRLF(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Export{
		Headers:        []string{"Nama", "Email"},
		Rows:           [][]string{{"Budi", "budi@example.com"}},
		IncludeHeaders: true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\uFEFF"), "output should start with a UTF-8 BOM")
	assert.Equal(t, "\uFEFFNama,Email\r\nBudi,budi@example.com\r\n", out)
}

func TestWriteQuotesSpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Export{
		Rows: [][]string{
			{`say "hi"`, "a,b", "line1\nline2"},
		},
	})
	require.NoError(t, err)

	out := strings.TrimPrefix(buf.String(), "\uFEFF")
	assert.Equal(t, "\"say \"\"hi\"\"\",\"a,b\",\"line1\nline2\"\r\n", out)
}

func TestWriteSkipsHeadersWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Export{
		Headers: []string{"Nama"},
		Rows:    [][]string{{"Budi"}},
	})
	require.NoError(t, err)

	out := strings.TrimPrefix(buf.String(), "\uFEFF")
	assert.Equal(t, "Budi\r\n", out)
}

func TestFinalFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "daftar-klien_2026-03-14_09-26-53.csv",
		FinalFilename(Export{Filename: "daftar-klien.csv", IncludeTimestamp: true}, now))

	assert.Equal(t, "daftar-klien.csv",
		FinalFilename(Export{Filename: "daftar-klien.csv"}, now))

	assert.Equal(t, "laporan_2026-03-14_09-26-53.csv",
		FinalFilename(Export{Filename: "laporan", IncludeTimestamp: true}, now))

	assert.Equal(t, "export.csv", FinalFilename(Export{}, now))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "Ya", FormatBool(true))
	assert.Equal(t, "Tidak", FormatBool(false))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1500000", FormatAmount(1500000))
	assert.Equal(t, "1234.50", FormatAmount(1234.5))
	assert.Equal(t, "0", FormatAmount(0))
}
