// Package forms loads the Google Forms spreadsheets describing PIs and
// the lab members they sponsor into the billing engine's tables.
//
// The sheets arrive with the verbose question headers Google Forms
// produces; the loader renames those to the canonical column names and
// validates the column contract before parsing a single row. Bad input
// fails here, at load time, never inside the billing computation.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cbslab/serverbilling/internal/billing"
)

// ErrMalformedInput wraps every load-time validation failure: a missing
// required column, or a cell that does not parse as the expected type.
var ErrMalformedInput = errors.New("malformed form input")

// Canonical column contracts, in sheet order.
var (
	PIColumns   = []string{"timestamp", "email", "first_name", "last_name", "storage", "pi_is_power_user", "speed_code"}
	UserColumns = []string{"timestamp", "email", "first_name", "last_name", "pi_last_name", "power_user"}
)

// The user form's speed code column is optional; a missing column or a
// blank cell means the user inherits the PI's code in preprocessing.
const speedCodeColumn = "speed_code"

var piHeaderRenames = map[string]string{
	"Timestamp":                      "timestamp",
	"Email Address":                  "email",
	"First name":                     "first_name",
	"Last name":                      "last_name",
	"Required storage needs (in TB)": "storage",
	"Would you like your account to be a power user account? " +
		"(There is a fee associated with power user accounts.)": "pi_is_power_user",
	"Speed code": "speed_code",
}

var userHeaderRenames = map[string]string{
	"Timestamp":     "timestamp",
	"Email Address": "email",
	"First name":    "first_name",
	"Last name":     "last_name",
	"PI Name":       "pi_last_name",
	"Do you need your account to be a power user account? " +
		"(There is a fee associated with power user accounts.  " +
		"Check with your PI first!)": "power_user",
	"Speed code": "speed_code",
}

// LoadPIForm reads the PI account request form at path.
func LoadPIForm(path string) (billing.PITable, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(rows[0], piHeaderRenames, PIColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	pis := make(billing.PITable, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parsePIRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		pis = append(pis, rec)
	}
	return pis, nil
}

// LoadUserForm reads the user account request form at path.
func LoadUserForm(path string) (billing.UserTable, error) {
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(rows[0], userHeaderRenames, UserColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	users := make(billing.UserTable, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseUserRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		users = append(users, rec)
	}
	return users, nil
}

func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrMalformedInput, path)
	}
	return rows, nil
}

// columnIndex maps canonical column names to sheet positions. Verbose
// Google Forms headers are renamed first; canonical headers pass
// through unchanged.
func columnIndex(header []string, renames map[string]string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if renamed, ok := renames[name]; ok {
			name = renamed
		} else {
			name = strings.ToLower(name)
		}
		idx[name] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, col)
		}
	}
	return idx, nil
}

func parsePIRow(row []string, idx map[string]int) (billing.PIRecord, error) {
	start, err := parseDate(cell(row, idx, "timestamp"))
	if err != nil {
		return billing.PIRecord{}, err
	}
	storage, err := parseFloat(cell(row, idx, "storage"))
	if err != nil {
		return billing.PIRecord{}, err
	}
	powerUser, err := parseFlag(cell(row, idx, "pi_is_power_user"))
	if err != nil {
		return billing.PIRecord{}, err
	}
	return billing.PIRecord{
		FirstName:   cell(row, idx, "first_name"),
		LastName:    cell(row, idx, "last_name"),
		Email:       cell(row, idx, "email"),
		StartDate:   start,
		StorageTB:   storage,
		IsPowerUser: powerUser,
		SpeedCode:   cell(row, idx, "speed_code"),
	}, nil
}

func parseUserRow(row []string, idx map[string]int) (billing.UserRecord, error) {
	start, err := parseDate(cell(row, idx, "timestamp"))
	if err != nil {
		return billing.UserRecord{}, err
	}
	powerUser, err := parseFlag(cell(row, idx, "power_user"))
	if err != nil {
		return billing.UserRecord{}, err
	}
	return billing.UserRecord{
		FirstName:  cell(row, idx, "first_name"),
		LastName:   cell(row, idx, "last_name"),
		Email:      cell(row, idx, "email"),
		PILastName: cell(row, idx, "pi_last_name"),
		StartDate:  start,
		PowerUser:  powerUser,
		SpeedCode:  cell(row, idx, speedCodeColumn),
	}, nil
}

// cell fetches a column value, tolerating the short rows excelize
// returns when trailing cells are empty.
func cell(row []string, idx map[string]int, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/06 15:04",
	"01-02-06 15:04",
	time.RFC3339,
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", ErrMalformedInput, s)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable number %q", ErrMalformedInput, s)
	}
	return v, nil
}

// parseFlag reads the form's Yes/No answers. A blank cell counts as No,
// matching how unanswered optional questions come back from the form.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true":
		return true, nil
	case "no", "false", "":
		return false, nil
	}
	return false, fmt.Errorf("%w: unparseable yes/no value %q", ErrMalformedInput, s)
}
