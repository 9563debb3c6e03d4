package fasteners

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

//go:embed data/*.csv
var tableFS embed.FS

// readTable parses a bundled CSV table into header-keyed rows. The bundled
// tables ship inside the binary, so parse failures panic.
func readTable(name string) []map[string]string {
	f, err := tableFS.Open("data/" + name)
	if err != nil {
		panic(fmt.Sprintf("fasteners: missing bundled table %s: %v", name, err))
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		panic(fmt.Sprintf("fasteners: malformed bundled table %s: %v", name, err))
	}
	if len(records) < 2 {
		panic(fmt.Sprintf("fasteners: bundled table %s is empty", name))
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows
}

// tableFloat reads a numeric column from a table row.
func tableFloat(row map[string]string, col, table string) float64 {
	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		panic(fmt.Sprintf("fasteners: bad %q in bundled table %s: %v", col, table, err))
	}
	return v
}
