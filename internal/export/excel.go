package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"staygen/internal/generator"
)

// WriteWorkbook writes the dataset as one Excel workbook with a sheet per
// table.
func WriteWorkbook(path string, ds *generator.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables(ds) {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %v", t.Name, err)
			}
		}

		header := make([]interface{}, len(t.Header))
		for j, h := range t.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header for sheet %s: %v", t.Name, err)
		}
		for rowIdx, row := range t.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row in sheet %s: %v", t.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %v", path, err)
	}
	return nil
}
