package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"kas-dashboard-svc/internal/aggregate"
)

const (
	nameColWidth   = 25
	periodColWidth = 12
	countColWidth  = 12
	totalColWidth  = 15
)

// BuildXLSX renders the recap as a workbook with a single "Rekapan Pembayaran" sheet
func BuildXLSX(r aggregate.Rekapan) (data []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	header := Header(r.Periodes)
	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(SheetName, "A1", last, headerStyle)
	}

	for i, rw := range rows(r) {
		values := make([]interface{}, 0, len(header))
		values = append(values, rw.name)
		for _, c := range rw.cells {
			values = append(values, c)
		}
		values = append(values, rw.paidCount, rw.unpaid, rw.totalPaid)

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	for i := range header {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(periodColWidth)
		switch {
		case i == 0:
			width = nameColWidth
		case i == len(header)-1:
			width = totalColWidth
		case i >= len(header)-3:
			width = countColWidth
		}
		_ = f.SetColWidth(SheetName, col, col, width)
	}

	if f.GetSheetName(0) == "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), nil
}

// Build renders the recap in format f
func Build(f Format, r aggregate.Rekapan) ([]byte, error) {
	if f == FormatXLSX {
		return BuildXLSX(r)
	}
	return BuildCSV(r)
}
