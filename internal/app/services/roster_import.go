package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RosterRow is one parsed line of an imported roster file.
type RosterRow struct {
	Name      string
	StudentID string
	Year      int // 0 when the cell was absent or not numeric
	Branch    string
}

// column indexes when the file carries no recognizable header
const (
	rosterColName = iota
	rosterColStudentID
	rosterColYear
	rosterColBranch
)

// xlsxMagic is the ZIP local-file-header signature; every .xlsx
// workbook starts with it, no CSV export does.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// ParseRoster reads a roster export, either an Excel workbook (first
// sheet) or a CSV file. The first row is treated as a header when it
// names a "name" column; otherwise columns are taken positionally as
// name, studentId, year, branch. Rows with a blank name or studentId
// are dropped here, mirroring how the import operation skips them.
func ParseRoster(r io.Reader) ([]RosterRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading roster file: %w", err)
	}

	var records [][]string
	if bytes.HasPrefix(data, xlsxMagic) {
		records, err = readWorkbook(data)
	} else {
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, err
	}

	return rosterRows(records), nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading roster file: %w", err)
	}
	return records, nil
}

// readWorkbook returns the rows of the first sheet of an xlsx file.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error reading roster workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("roster workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading roster workbook: %w", err)
	}
	return records, nil
}

// rosterRows applies the header/positional column mapping shared by
// both file formats.
func rosterRows(records [][]string) []RosterRow {
	rows := []RosterRow{}
	if len(records) == 0 {
		return rows
	}

	columns := map[string]int{
		"name":      rosterColName,
		"studentid": rosterColStudentID,
		"year":      rosterColYear,
		"branch":    rosterColBranch,
	}
	if header, ok := rosterHeader(records[0]); ok {
		columns = header
		records = records[1:]
	}

	for _, record := range records {
		row := RosterRow{
			Name:      rosterCell(record, columns, "name"),
			StudentID: rosterCell(record, columns, "studentid"),
			Branch:    rosterCell(record, columns, "branch"),
		}
		if year, err := strconv.Atoi(rosterCell(record, columns, "year")); err == nil && year > 0 {
			row.Year = year
		}
		if row.Name == "" || row.StudentID == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

// rosterHeader maps recognized header names to their column index.
func rosterHeader(record []string) (map[string]int, bool) {
	columns := map[string]int{}
	for i, cell := range record {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cell)), " ", "")
		key = strings.ReplaceAll(key, "_", "")
		switch key {
		case "name", "studentname":
			columns["name"] = i
		case "studentid", "rollno", "rollnumber":
			columns["studentid"] = i
		case "year":
			columns["year"] = i
		case "branch":
			columns["branch"] = i
		}
	}
	_, ok := columns["name"]
	return columns, ok
}

func rosterCell(record []string, columns map[string]int, key string) string {
	i, ok := columns[key]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
