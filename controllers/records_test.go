package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/service"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

func listContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

var adminUser = &utils.LoginUser{ID: "1", UserCode: "ADMIN", Name: "Admin", Role: string(models.UserRoleAdmin)}

func TestParseRecordFiltersStatus(t *testing.T) {
	filters, err := parseRecordFilters(listContext("status=completed"), adminUser, newOrderFamily)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, filters.Status)

	filters, err = parseRecordFilters(listContext("status=pending"), adminUser, newOrderFamily)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, filters.Status)

	for _, q := range []string{"", "status=", "status=all"} {
		filters, err = parseRecordFilters(listContext(q), adminUser, newOrderFamily)
		require.NoError(t, err, q)
		assert.Equal(t, models.Status(""), filters.Status, q)
	}

	_, err = parseRecordFilters(listContext("status=bogus"), adminUser, newOrderFamily)
	assert.Error(t, err)
}

func TestParseRecordFiltersScopesSalesRole(t *testing.T) {
	sales := &utils.LoginUser{ID: "2", UserCode: "S1", Name: "Asha", Role: string(models.UserRoleSales)}

	filters, err := parseRecordFilters(listContext("salesExecCode=S9"), sales, newOrderFamily)
	require.NoError(t, err)
	assert.Equal(t, "S1", filters.SalesExecCode)

	filters, err = parseRecordFilters(listContext("salesExecCode=S9"), adminUser, newOrderFamily)
	require.NoError(t, err)
	assert.Equal(t, "S9", filters.SalesExecCode)
}

func TestParseRecordFiltersRangeBucket(t *testing.T) {
	// the variant's default range field applies when none is given
	filters, err := parseRecordFilters(listContext("rangeFilter=51-100"), adminUser, pendingOrderFamily)
	require.NoError(t, err)
	require.NotNil(t, filters.NumericBucket)
	assert.Equal(t, "pendingPcs", filters.NumericBucket.Field)
	assert.Equal(t, 51.0, filters.NumericBucket.Min)
	assert.Equal(t, 100.0, filters.NumericBucket.Max)

	// a stored-field bucket keeps the request on the server-paged path
	// and lands in the database query
	params := service.PageParams{Page: 1, Size: 10}
	assert.False(t, service.NeedsClientPaging(params, filters))
	assert.Contains(t, filters.Query(pendingOrderFamily.dateField), "pendingPcs")

	// a computed-field bucket forces the in-memory path instead
	filters, err = parseRecordFilters(listContext("rangeFilter=30-90&rangeField=daysSince"), adminUser, pendingOrderFamily)
	require.NoError(t, err)
	assert.True(t, service.NeedsClientPaging(params, filters))
	assert.NotContains(t, filters.Query(pendingOrderFamily.dateField), "daysSince")

	_, err = parseRecordFilters(listContext("rangeFilter=51-100&rangeField=clientName"), adminUser, pendingOrderFamily)
	assert.Error(t, err)
}

func TestParseRecordFiltersDateRange(t *testing.T) {
	filters, err := parseRecordFilters(listContext("startDate=2024-05-01&endDate=2024-05-31"), adminUser, newOrderFamily)
	require.NoError(t, err)
	require.NotNil(t, filters.DateRange)

	_, err = parseRecordFilters(listContext("startDate=2024-05-01"), adminUser, newOrderFamily)
	assert.Error(t, err)

	_, err = parseRecordFilters(listContext("startDate=2024-05-31&endDate=2024-05-01"), adminUser, newOrderFamily)
	assert.Error(t, err)
}
