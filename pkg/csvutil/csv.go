package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// utf8BOM makes Excel detect the encoding correctly.
const utf8BOM = "\uFEFF"

// Export describes a single CSV download: a header row plus rows of scalar
// cells already rendered to strings.
type Export struct {
	Headers          []string
	Rows             [][]string
	Filename         string
	IncludeTimestamp bool
	IncludeHeaders   bool
}

// Write renders the export as UTF-8 CSV with a leading BOM and CRLF line
// endings. Quoting follows RFC 4180: fields containing a comma, quote or
// newline are wrapped in quotes with embedded quotes doubled.
func Write(w io.Writer, e Export) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if e.IncludeHeaders && len(e.Headers) > 0 {
		if err := cw.Write(e.Headers); err != nil {
			return err
		}
	}
	for _, row := range e.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FinalFilename returns the download filename, suffixed with
// _YYYY-MM-DD_HH-MM-SS before the extension when timestamping is on.
func FinalFilename(e Export, now time.Time) string {
	name := e.Filename
	if name == "" {
		name = "export.csv"
	}

	suffix := ""
	if e.IncludeTimestamp {
		suffix = "_" + now.Format("2006-01-02_15-04-05")
	}

	if strings.HasSuffix(name, ".csv") {
		return strings.TrimSuffix(name, ".csv") + suffix + ".csv"
	}
	return name + suffix + ".csv"
}

// FormatBool renders a boolean cell the way the exports label it.
func FormatBool(v bool) string {
	if v {
		return "Ya"
	}
	return "Tidak"
}

// FormatAmount renders a currency cell without grouping, two decimals dropped
// for whole amounts.
func FormatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}
