package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/landecol/landstats/metrics"
)

// WriteCSV writes a metrics table as CSV: a header row, then one row
// per table row in table order. The first two columns are "level"
// ("class" or "landscape") and "class" (empty on the landscape row);
// the rest follow the table's column order. NaN values are written as
// empty cells.
func WriteCSV(w io.Writer, t *metrics.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Columns)+2)
	header = append(header, "level", "class")
	for _, id := range t.Columns {
		header = append(header, string(id))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for _, row := range t.Rows {
		if row.Level == metrics.ClassLevel {
			rec[0] = "class"
			rec[1] = strconv.Itoa(row.Class)
		} else {
			rec[0] = "landscape"
			rec[1] = ""
		}
		for i, id := range t.Columns {
			rec[i+2] = formatValue(row.Get(id))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
