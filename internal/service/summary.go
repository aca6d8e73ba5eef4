package service

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cbslab/serverbilling/internal/billing"
)

// writeSummary exports one row per bill into a quarterly summary
// spreadsheet: surname, speed codes, storage and power user subtotals,
// and the grand total.
func writeSummary(path string, bills []*billing.Bill) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"pi_last_name",
		"speed_codes",
		"storage_tb",
		"storage_quarterly",
		"power_users_quarterly",
		"total",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, b := range bills {
		var storage float64
		if b.Storage != nil {
			storage = b.Storage.QuarterlyPrice
		}

		codes := make([]string, 0, len(b.Groups))
		for _, g := range b.Groups {
			codes = append(codes, g.SpeedCode)
		}

		excelRow := []interface{}{
			b.PILastName,
			strings.Join(codes, ";"),
			b.StorageTB,
			storage,
			b.Total() - storage,
			b.Total(),
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return err
		}
		row++
	}

	return f.SaveAs(path)
}
