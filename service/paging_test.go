package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func newOrderRec(clientCode string, lastOrderDate *time.Time) *models.NewOrder {
	r := &models.NewOrder{LastOrderDate: lastOrderDate}
	r.ClientCode = clientCode
	r.Status = models.StatusPending
	return r
}

func clientCodes(items []models.FollowupRecord) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.Base().ClientCode)
	}
	return out
}

func TestNeedsClientPaging(t *testing.T) {
	assert.True(t, NeedsClientPaging(PageParams{SortBy: "noOrderSince"}, FilterSet{}))
	assert.True(t, NeedsClientPaging(PageParams{SortBy: "daysPending"}, FilterSet{}))
	assert.True(t, NeedsClientPaging(PageParams{SortBy: "daysSinceOrder"}, FilterSet{}))
	assert.True(t, NeedsClientPaging(PageParams{SortBy: "daysSinceFollowUp"}, FilterSet{}))

	assert.False(t, NeedsClientPaging(PageParams{SortBy: "clientName"}, FilterSet{}))
	assert.False(t, NeedsClientPaging(PageParams{}, FilterSet{}))

	daysBucket := &NumericBucket{Field: "daysSince", Min: 30, Max: 90}
	assert.True(t, NeedsClientPaging(PageParams{SortBy: "clientName"}, FilterSet{NumericBucket: daysBucket}))

	// stored-field buckets narrow the database query instead
	storedBucket := &NumericBucket{Field: "pendingPcs", Min: 51, Max: 100}
	assert.False(t, NeedsClientPaging(PageParams{SortBy: "clientName"}, FilterSet{NumericBucket: storedBucket}))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(0), TotalPages(5, 0))
}

func TestPaginateClientManualSort(t *testing.T) {
	today := day(2024, 6, 10)
	rows := []models.FollowupRecord{
		newOrderRec("C1", datePtr(day(2024, 6, 8))),  // 2 days
		newOrderRec("C2", datePtr(day(2024, 5, 1))),  // 40 days
		newOrderRec("C3", nil),                       // undated
		newOrderRec("C4", datePtr(day(2024, 6, 1))),  // 9 days
	}

	res := PaginateClient(rows, PageParams{Page: 1, Size: 10, SortBy: "noOrderSince", SortOrder: "desc"}, today)
	assert.Equal(t, []string{"C2", "C4", "C1", "C3"}, clientCodes(res.Items))
	assert.Equal(t, int64(4), res.TotalItems)
	assert.Equal(t, int64(1), res.TotalPages)

	// undated records sink to the end in both directions
	res = PaginateClient(rows, PageParams{Page: 1, Size: 10, SortBy: "noOrderSince", SortOrder: "asc"}, today)
	assert.Equal(t, []string{"C1", "C4", "C2", "C3"}, clientCodes(res.Items))
}

func TestPaginateClientPreservesOrderForServerSorts(t *testing.T) {
	today := day(2024, 6, 10)
	rows := []models.FollowupRecord{
		newOrderRec("C3", nil),
		newOrderRec("C1", datePtr(day(2024, 6, 8))),
		newOrderRec("C2", datePtr(day(2024, 5, 1))),
	}

	// a stored-column sort arrives presorted; the slicer must not reorder it
	res := PaginateClient(rows, PageParams{Page: 1, Size: 10, SortBy: "clientName", SortOrder: "asc"}, today)
	assert.Equal(t, []string{"C3", "C1", "C2"}, clientCodes(res.Items))
}

func TestPaginateClientPagesPartitionTheSet(t *testing.T) {
	today := day(2024, 6, 10)
	var rows []models.FollowupRecord
	for i := 0; i < 25; i++ {
		rows = append(rows, newOrderRec(string(rune('A'+i)), datePtr(day(2024, 6, 10).AddDate(0, 0, -i))))
	}

	params := PageParams{Size: 10, SortBy: "noOrderSince", SortOrder: "asc"}

	seen := map[string]int{}
	var pages int64 = TotalPages(int64(len(rows)), params.Size)
	require.Equal(t, int64(3), pages)

	for page := int64(1); page <= pages; page++ {
		params.Page = page
		res := PaginateClient(rows, params, today)
		assert.Equal(t, int64(25), res.TotalItems)
		for _, code := range clientCodes(res.Items) {
			seen[code]++
		}
	}

	// every record appears exactly once across the pages
	assert.Len(t, seen, 25)
	for code, n := range seen {
		assert.Equalf(t, 1, n, "record %s appeared %d times", code, n)
	}
}

func TestPaginateClientOutOfRangePageResets(t *testing.T) {
	today := day(2024, 6, 10)
	rows := []models.FollowupRecord{
		newOrderRec("C1", datePtr(day(2024, 6, 8))),
		newOrderRec("C2", datePtr(day(2024, 6, 7))),
	}

	res := PaginateClient(rows, PageParams{Page: 9, Size: 10, SortBy: "noOrderSince"}, today)
	assert.Equal(t, int64(1), res.Page)
	assert.Equal(t, []string{"C1", "C2"}, clientCodes(res.Items))
}

func TestPaginateClientEmptySet(t *testing.T) {
	today := day(2024, 6, 10)
	res := PaginateClient(nil, PageParams{Page: 1, Size: 10, SortBy: "noOrderSince"}, today)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(0), res.TotalItems)
	assert.Equal(t, int64(0), res.TotalPages)
}

func TestPaginateDispatch(t *testing.T) {
	today := day(2024, 6, 10)
	pageItems := []models.FollowupRecord{newOrderRec("C1", nil)}

	res := Paginate(ServerPaged{TotalItems: 42}, pageItems, PageParams{Page: 3, Size: 10}, today)
	assert.Equal(t, int64(42), res.TotalItems)
	assert.Equal(t, int64(5), res.TotalPages)
	assert.Equal(t, int64(3), res.Page)
	assert.Equal(t, []string{"C1"}, clientCodes(res.Items))

	all := []models.FollowupRecord{
		newOrderRec("C1", datePtr(day(2024, 6, 8))),
		newOrderRec("C2", datePtr(day(2024, 5, 1))),
	}
	res = Paginate(ClientPaged{AllRows: all}, nil, PageParams{Page: 1, Size: 10, SortBy: "noOrderSince", SortOrder: "desc"}, today)
	assert.Equal(t, int64(2), res.TotalItems)
	assert.Equal(t, []string{"C2", "C1"}, clientCodes(res.Items))
}

func TestSortKeyLastFollowUp(t *testing.T) {
	today := day(2024, 6, 10)

	r := newOrderRec("C1", nil)
	r.LastFollowUpDate = datePtr(day(2024, 6, 5))

	k, ok := sortKey("daysSinceFollowUp", r, today)
	require.True(t, ok)
	assert.Equal(t, 5.0, k)

	r.LastFollowUpDate = nil
	_, ok = sortKey("daysSinceFollowUp", r, today)
	assert.False(t, ok)
}
