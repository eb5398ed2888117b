package documents

import (
	"bytes"
	"fmt"

	"remodeling_proposals/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const priceHistorySheet = "Price History"

// PriceHistoryHeader is the first row of the exported workbook.
var PriceHistoryHeader = []string{
	"Change Date",
	"Item",
	"Item Type",
	"Old Price",
	"New Price",
	"Region",
	"Property Type",
	"Season",
	"Changed By",
	"Reason",
}

// PriceHistoryWorkbook renders history rows into an XLSX file.
func PriceHistoryWorkbook(history []entities.PriceHistory) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(priceHistorySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range PriceHistoryHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(priceHistorySheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(PriceHistoryHeader), 1)
	if err := f.SetCellStyle(priceHistorySheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, h := range history {
		row := i + 2
		oldPrice, _ := h.OldPrice.Float64()
		newPrice, _ := h.NewPrice.Float64()
		values := []any{
			h.ChangeDate.UTC().Format("2006-01-02 15:04:05"),
			h.ItemID,
			h.ItemType,
			oldPrice,
			newPrice,
			h.Region,
			h.PropertyType,
			h.Season,
			h.ChangedBy,
			h.Reason,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(priceHistorySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if err := f.SetColWidth(priceHistorySheet, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(priceHistorySheet, "J", "J", 40); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
