package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func TestParseImportDate(t *testing.T) {
	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"10/06/2024", "2024-06-10", "10-06-2024"} {
		got, err := parseImportDate(value)
		require.NoError(t, err, value)
		require.NotNil(t, got, value)
		assert.Equal(t, want, *got, value)
	}

	got, err := parseImportDate("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseImportDate("June 10, 2024")
	assert.Error(t, err)
}

func TestParseImportNumbers(t *testing.T) {
	n, err := parseImportInt("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	// excel renders integers as floats
	n, err = parseImportInt("42.0")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = parseImportInt("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = parseImportInt("forty-two")
	assert.Error(t, err)

	f, err := parseImportFloat("12.345")
	require.NoError(t, err)
	assert.Equal(t, 12.345, f)
}

func TestImportBase(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	row := map[string]string{
		"Client Code":         " C1 ",
		"Client Name":         "Alpha Jewels",
		"Sales Exec":          "S1",
		"Status":              "",
		"Next Follow Up Date": "15/06/2024",
		"Remark":              "priority",
	}

	base, err := importBase(row, "batch-1", now)
	require.NoError(t, err)
	assert.False(t, base.ID.IsZero())
	assert.Equal(t, "C1", base.ClientCode)
	assert.Equal(t, "Alpha Jewels", base.ClientName)
	assert.Equal(t, "S1", base.SalesExecCode)
	assert.Equal(t, models.StatusPending, base.Status)
	require.NotNil(t, base.NextFollowUpDate)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *base.NextFollowUpDate)
	assert.Equal(t, "batch-1", base.ImportBatchID)
	assert.Equal(t, "priority", base.Remark)

	// every mapped row gets its own id
	again, err := importBase(row, "batch-1", now)
	require.NoError(t, err)
	assert.NotEqual(t, base.ID, again.ID)

	_, err = importBase(map[string]string{"Client Name": "No Code"}, "batch-1", now)
	assert.Error(t, err)
}
