package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted date layouts for gate spreadsheets. The portaria system exports
// "2025-11-19 16:54:41", but operators occasionally re-save the file with
// Brazilian date formatting.
var sheetDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// excelEpochOffset converts an Excel serial day number to Unix days.
// Excel day 1 is 1900-01-01 and day 60 is the fictitious 1900-02-29.
const excelEpochOffset = 25569

// HeaderIndex returns the index of the first header matching any of the
// given synonyms, comparing case-insensitively after trimming. Returns -1
// when no column matches.
func HeaderIndex(headers []string, synonyms ...string) int {
	for i, h := range headers {
		normalized := strings.ToLower(strings.TrimSpace(h))
		for _, s := range synonyms {
			if normalized == strings.ToLower(s) {
				return i
			}
		}
	}
	return -1
}

// CellAt returns the trimmed cell at index i, tolerating short rows:
// spreadsheet readers drop trailing empty cells.
func CellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ParseSheetDate parses a spreadsheet date cell. Accepts the known textual
// layouts and Excel serial day numbers. The caller owns the fallback policy
// for unparseable values.
func ParseSheetDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date cell")
	}

	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	// Excel serial number: integer days since 1900, fraction is time of day
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, fmt.Errorf("invalid excel serial date %q", value)
		}
		seconds := (serial - excelEpochOffset) * 86400
		return time.Unix(int64(seconds), 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

// ColumnName converts a zero-based column index to its spreadsheet letter
// ("A", "B", ..., "AA")
func ColumnName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}
