package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func TestExportHeadersPerVariant(t *testing.T) {
	for _, rt := range models.AllRecordTypes {
		headers := ExportHeaders(rt)
		require.NotEmpty(t, headers)
		assert.Equal(t, "Client Code", headers[0])
		assert.Greater(t, len(headers), len(commonHeaders))
	}

	assert.Contains(t, ExportHeaders(models.RecordTypeNewOrder), "No Order Since")
	assert.Contains(t, ExportHeaders(models.RecordTypePendingOrder), "Days Pending")
	assert.Contains(t, ExportHeaders(models.RecordTypePendingMaterial), "Total Net Wt")
	assert.Contains(t, ExportHeaders(models.RecordTypeCadOrder), "Design No")
}

func TestToRows(t *testing.T) {
	today := day(2024, 6, 10)

	r1 := &models.PendingOrder{
		OrderNo:       "ORD-9",
		OrderDate:     datePtr(day(2024, 5, 1)),
		TotalOrderPcs: 100,
		PendingPcs:    60,
	}
	r1.ClientCode = "C1"
	r1.ClientName = "Alpha Jewels"
	r1.SalesExecCode = "S1"
	r1.Status = models.StatusPending

	r2 := &models.PendingOrder{OrderNo: "ORD-10", TotalOrderPcs: 5, PendingPcs: 5}
	r2.ClientCode = "C2"
	r2.Status = models.StatusCompleted

	headers, rows, err := ToRows([]models.FollowupRecord{r1, r2}, today)
	require.NoError(t, err)

	assert.Equal(t, ExportHeaders(models.RecordTypePendingOrder), headers)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(headers))
	}

	// rows keep the caller's display order
	assert.Equal(t, "C1", rows[0][0])
	assert.Equal(t, "C2", rows[1][0])

	// dates render as DD/MM/YYYY and days pending is computed
	assert.Equal(t, "01/05/2024", rows[0][9])
	assert.Equal(t, "40", rows[0][12])

	// undated order leaves the computed cell blank
	assert.Equal(t, "", rows[1][12])
	assert.Equal(t, "completed", rows[1][3])
}

func TestToRowsEmptySet(t *testing.T) {
	_, _, err := ToRows(nil, day(2024, 6, 10))
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestToRowsRejectsMixedTypes(t *testing.T) {
	today := day(2024, 6, 10)
	records := []models.FollowupRecord{
		&models.NewOrder{},
		&models.CadOrder{},
	}
	_, _, err := ToRows(records, today)
	assert.Error(t, err)
}

func TestWriteWorkbook(t *testing.T) {
	headers := []string{"Client Code", "Client Name"}
	rows := [][]string{{"C1", "Alpha"}, {"C2", "Beta"}}

	f, err := WriteWorkbook(headers, rows, "New Orders")
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("New Orders", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Client Code", got)

	got, err = f.GetCellValue("New Orders", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got)

	width, err := f.GetColWidth("New Orders", "A")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, width, minColumnWidth)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "New Orders_2024-06-10_14-30-05.xlsx", ExportFileName("New Orders", now))
}
