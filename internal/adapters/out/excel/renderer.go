package excel

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Production order"
	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var _ ports.ProductionOrderRenderer = &Renderer{}

var headers = []string{"Name", "Product", "Urgency", "Hours", "Cost", "Deadline", "Score"}

// Renderer writes the production order as a single xlsx sheet, one row per
// order in the given order.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) ContentType() string {
	return contentType
}

func (r *Renderer) Render(ctx context.Context, orders []*order.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, name := range headers {
		if err := f.SetCellValue(SheetName, cellName(i+1, 1), name); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", cellName(len(headers), 1), headerStyle); err != nil {
		return nil, err
	}

	for i, o := range orders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := []any{
			o.Name(),
			o.Product(),
			o.Urgency(),
			o.ProductionHours(),
			o.Cost(),
			o.Deadline().String(),
			o.Score(),
		}
		if err := f.SetSheetRow(SheetName, cellName(1, i+2), &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	}); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "A", "B", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
