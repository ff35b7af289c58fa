package queries_test

import (
	"strings"

	"gestion/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

func (s *QueriesTestSuite) Test_ExportOrders_WritesWorkbook() {
	// Arrange
	s.newOrder(2, day.AddDate(0, 0, 1), line{s.products[0], 1, "1.00"})
	query, err := queries.NewExportOrdersQuery(queries.OrderFilter{})
	s.Require().NoError(err)

	// Act
	f, name, err := queries.NewExportOrdersQueryHandler(s.db).Handle(s.T().Context(), query)

	// Assert
	s.Require().NoError(err)
	defer f.Close()

	s.True(strings.HasPrefix(name, "pedidos_"))
	s.True(strings.HasSuffix(name, ".xlsx"))

	rows, err := f.GetRows("Pedidos", excelize.Options{RawCellValue: true})
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("Número", rows[0][0])
	s.Equal("PED-000002", rows[1][0])
	s.Equal("PED-000001", rows[2][0])
	s.Equal("2025-05-01", rows[2][1])
	s.Equal("NOVO PEDIDO", rows[2][2])
	s.Equal("Adega Central", rows[2][3])

	total, err := f.GetCellValue("Pedidos", "H3", excelize.Options{RawCellValue: true})
	s.Require().NoError(err)
	s.Equal("100", total)
	outstanding, err := f.GetCellValue("Pedidos", "J3", excelize.Options{RawCellValue: true})
	s.Require().NoError(err)
	s.Equal("25", outstanding)
}

func (s *QueriesTestSuite) Test_ExportOrders_RequiresConstructor() {
	_, _, err := queries.NewExportOrdersQueryHandler(s.db).Handle(s.T().Context(), queries.ExportOrdersQuery{})

	s.ErrorIs(err, queries.ErrExportOrdersQueryIsNotConstructed)
}
