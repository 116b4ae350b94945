package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

// minColumnWidth keeps narrow columns readable in the exported workbook.
const minColumnWidth = 15.0

// ErrNothingToExport signals an empty filtered set. Callers surface a notice
// instead of producing an empty workbook.
var ErrNothingToExport = errors.New("no records to export")

// commonHeaders lead every variant's row; Client Code stays first so exports
// line up with the on-screen table.
var commonHeaders = []string{
	"Client Code",
	"Client Name",
	"Sales Exec",
	"Status",
	"Next Follow Up Date",
	"Last Follow Up Date",
	"Last Follow Up By",
	"Remark",
}

// ExportHeaders returns the column set for one record variant.
func ExportHeaders(t models.RecordType) []string {
	var extra []string
	switch t {
	case models.RecordTypeNewOrder:
		extra = []string{"Last Order No", "Last Order Date", "No Order Since"}
	case models.RecordTypePendingOrder:
		extra = []string{"Order No", "Order Date", "Total Order Pcs", "Pending Pcs", "Days Pending"}
	case models.RecordTypePendingMaterial:
		extra = []string{"Style No", "Department", "Total Net Wt", "Expected Delivery Date"}
	case models.RecordTypeCadOrder:
		extra = []string{"Design No", "Cad Date", "Design Status"}
	}
	return append(append([]string{}, commonHeaders...), extra...)
}

// daysSinceCell renders a computed days-since value, blank when undated.
func daysSinceCell(ref *time.Time, today time.Time) string {
	if ref == nil {
		return ""
	}
	return strconv.Itoa(DaysSince(*ref, today))
}

// ToRows flattens records into tabular rows in their current display order.
// All records must share one variant; exports are per entity type.
func ToRows(records []models.FollowupRecord, today time.Time) ([]string, [][]string, error) {
	if len(records) == 0 {
		return nil, nil, ErrNothingToExport
	}

	recordType := records[0].Type()
	headers := ExportHeaders(recordType)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		if r.Type() != recordType {
			return nil, nil, fmt.Errorf("mixed record types in export: %s and %s", recordType, r.Type())
		}

		base := r.Base()
		row := []string{
			base.ClientCode,
			base.ClientName,
			base.SalesExecCode,
			string(models.NormalizeStatus(base.Status)),
			utils.FormatDisplayDate(base.NextFollowUpDate),
			utils.FormatDisplayDate(base.LastFollowUpDate),
			base.LastFollowUpBy,
			base.Remark,
		}

		switch rec := r.(type) {
		case *models.NewOrder:
			row = append(row,
				rec.LastOrderNo,
				utils.FormatDisplayDate(rec.LastOrderDate),
				daysSinceCell(rec.LastOrderDate, today),
			)
		case *models.PendingOrder:
			row = append(row,
				rec.OrderNo,
				utils.FormatDisplayDate(rec.OrderDate),
				strconv.Itoa(rec.TotalOrderPcs),
				strconv.Itoa(rec.PendingPcs),
				daysSinceCell(rec.OrderDate, today),
			)
		case *models.PendingMaterial:
			row = append(row,
				rec.StyleNo,
				rec.DepartmentName,
				strconv.FormatFloat(rec.TotalNetWt, 'f', 3, 64),
				utils.FormatDisplayDate(rec.ExpectedDeliveryDate),
			)
		case *models.CadOrder:
			row = append(row,
				rec.DesignNo,
				utils.FormatDisplayDate(rec.CadDate),
				rec.DesignStatus,
			)
		default:
			return nil, nil, fmt.Errorf("unknown record type %T", r)
		}

		rows = append(rows, row)
	}

	return headers, rows, nil
}

// WriteWorkbook builds a single-sheet workbook with header-derived column
// widths (floor of minColumnWidth).
func WriteWorkbook(headers []string, rows [][]string, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil && sheetName != "Sheet1" {
		return nil, err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}

		width := float64(len(header)) + 2
		if width < minColumnWidth {
			width = minColumnWidth
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFileName builds the download name: <ReportName>_<YYYY-MM-DD>_<HH-MM-SS>.xlsx
func ExportFileName(reportName string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.xlsx",
		reportName,
		now.UTC().Format("2006-01-02"),
		now.UTC().Format("15-04-05"),
	)
}
