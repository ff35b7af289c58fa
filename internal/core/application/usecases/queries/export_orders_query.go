package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gestion/internal/pkg/guard"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const exportSheet = "Pedidos"

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

var exportHeaders = []string{
	"Número", "Data", "Estado", "Cliente", "Fornecedor",
	"Peso frete (kg)", "Frete (€)", "Total (€)", "Pago (€)", "Em dívida (€)", "Notas",
}

var exportWidths = []float64{14, 12, 16, 28, 28, 14, 12, 12, 12, 14, 40}

// ExportOrdersQuery renders the orders matching a filter into an xlsx workbook.
type ExportOrdersQuery struct {
	list ListOrdersQuery

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery accepts the ListOrdersQuery filter; a zero limit exports
// up to MaxListLimit orders.
func NewExportOrdersQuery(filter OrderFilter) (ExportOrdersQuery, error) {
	if filter.Limit == 0 {
		filter.Limit = MaxListLimit
	}
	list, err := NewListOrdersQuery(filter)
	if err != nil {
		return ExportOrdersQuery{}, err
	}
	return ExportOrdersQuery{list: list, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

type ExportOrdersQueryHandler struct {
	orders ListOrdersQueryHandler
}

func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{orders: NewListOrdersQueryHandler(db)}
}

// Handle returns the workbook and a download file name. The caller closes the file.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) (*excelize.File, string, error) {
	if err := query.Validate(); err != nil {
		return nil, "", err
	}

	orders, err := h.orders.Handle(ctx, query.list)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, "", err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, "", err
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, "", err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(exportSheet, col, col, exportWidths[i]); err != nil {
			return nil, "", err
		}
	}
	if err := f.SetCellStyle(exportSheet, "A1", "K1", headerStyle); err != nil {
		return nil, "", err
	}

	for i, o := range orders {
		row := i + 2
		values := []any{
			o.Number,
			o.CreatedAt.Format(time.DateOnly),
			o.Status.String(),
			o.ClientName,
			o.SupplierName,
			float64(o.FreightWeightGrams) / 1000,
			o.FreightCost.Round(2).InexactFloat64(),
			o.Total.Round(2).InexactFloat64(),
			o.Paid.Round(2).InexactFloat64(),
			o.Outstanding.Round(2).InexactFloat64(),
			o.Notes,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, "", err
		}
		if err := f.SetCellStyle(exportSheet, fmt.Sprintf("G%d", row), fmt.Sprintf("J%d", row), moneyStyle); err != nil {
			return nil, "", err
		}
	}

	return f, fmt.Sprintf("pedidos_%s.xlsx", time.Now().UTC().Format("20060102")), nil
}
