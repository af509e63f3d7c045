package services

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseRosterWithHeader(t *testing.T) {
	file := strings.Join([]string{
		"Name,Student ID,Year,Branch",
		"Asha Rao,S101,2,CSE",
		",S102,1,ECE",
		"Vikram Shah,,3,",
		"Meena Iyer,S104,not-a-year,ME",
	}, "\n")

	rows, err := ParseRoster(strings.NewReader(file))
	require.NoError(t, err)

	// blank-name and blank-id rows are dropped
	require.Len(t, rows, 2)
	assert.Equal(t, RosterRow{Name: "Asha Rao", StudentID: "S101", Year: 2, Branch: "CSE"}, rows[0])
	assert.Equal(t, RosterRow{Name: "Meena Iyer", StudentID: "S104", Year: 0, Branch: "ME"}, rows[1])
}

func TestParseRosterWithoutHeader(t *testing.T) {
	file := "Asha Rao,S101,2,CSE\nRavi Kumar,S102,1,ECE\n"

	rows, err := ParseRoster(strings.NewReader(file))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "S101", rows[0].StudentID)
	assert.Equal(t, 1, rows[1].Year)
}

func TestParseRosterShortRows(t *testing.T) {
	file := "name,studentId\nAsha Rao,S101\n"

	rows, err := ParseRoster(strings.NewReader(file))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, RosterRow{Name: "Asha Rao", StudentID: "S101"}, rows[0])
}

func TestParseRosterEmpty(t *testing.T) {
	rows, err := ParseRoster(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRosterWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Name", "Student ID", "Year", "Branch"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Asha Rao", "S101", 2, "CSE"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"", "S102", 1, "ECE"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"Ravi Kumar", "S103", "not-a-year", ""}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ParseRoster(buf)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, RosterRow{Name: "Asha Rao", StudentID: "S101", Year: 2, Branch: "CSE"}, rows[0])
	assert.Equal(t, RosterRow{Name: "Ravi Kumar", StudentID: "S103", Year: 0}, rows[1])
}

func TestParseRosterRejectsNonWorkbookZip(t *testing.T) {
	// A ZIP container that is not a spreadsheet must fail loudly
	// instead of reading as an empty CSV.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("not a roster"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ParseRoster(&buf)
	assert.Error(t, err)
}
