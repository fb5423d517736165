package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column set consumers of the results file expect.
var csvHeader = []string{
	"InputSize", "InputType", "AvgTimeMs", "StdDevMs",
	"Comparisons", "Assignments", "ArrayAccesses", "MemoryBytes", "Result",
}

// WriteCSV writes the header and one record per row to w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.InputSize),
			row.InputType,
			strconv.FormatFloat(row.AvgTimeMs, 'f', 4, 64),
			strconv.FormatFloat(row.StdDevMs, 'f', 4, 64),
			strconv.FormatInt(row.Comparisons, 10),
			strconv.FormatInt(row.Assignments, 10),
			strconv.FormatInt(row.Accesses, 10),
			strconv.FormatInt(row.MemoryBytes, 10),
			row.Result,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row for size %d: %w", row.InputSize, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
