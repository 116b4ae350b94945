package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	page, size := ParsePagination(testContext("page=3&size=25"))
	assert.Equal(t, int64(3), page)
	assert.Equal(t, int64(25), size)

	page, size = ParsePagination(testContext(""))
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), size)

	page, size = ParsePagination(testContext("page=-1&size=0"))
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), size)

	_, size = ParsePagination(testContext("size=5000"))
	assert.Equal(t, int64(100), size)
}

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam("2024-06-10")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDateParam("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDateParam("10/06/2024")
	assert.Error(t, err)
}

func TestFormatDisplayDate(t *testing.T) {
	d := time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "10/06/2024", FormatDisplayDate(&d))
	assert.Equal(t, "", FormatDisplayDate(nil))

	// non-UTC inputs render by their UTC day
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2024, 6, 11, 1, 0, 0, 0, ist)
	assert.Equal(t, "10/06/2024", FormatDisplayDate(&late))
}
