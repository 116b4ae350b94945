package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func pendingOrderRec(clientCode, clientName, salesExec string, pendingPcs int, orderDate *time.Time) *models.PendingOrder {
	r := &models.PendingOrder{
		OrderNo:    "ORD-1",
		OrderDate:  orderDate,
		PendingPcs: pendingPcs,
	}
	r.ClientCode = clientCode
	r.ClientName = clientName
	r.SalesExecCode = salesExec
	r.Status = models.StatusPending
	return r
}

func TestParseRangeFilter(t *testing.T) {
	b, err := ParseRangeFilter("pendingPcs", "51-100")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "pendingPcs", b.Field)
	assert.Equal(t, 51.0, b.Min)
	assert.Equal(t, 100.0, b.Max)

	b, err = ParseRangeFilter("daysSince", "500+")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 500.0, b.Min)
	assert.Equal(t, math.MaxFloat64, b.Max)

	b, err = ParseRangeFilter("pendingPcs", "all")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = ParseRangeFilter("", "51-100")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = ParseRangeFilter("pendingPcs", "abc")
	assert.Error(t, err)

	_, err = ParseRangeFilter("pendingPcs", "100-51")
	assert.Error(t, err)

	_, err = ParseRangeFilter("clientName", "51-100")
	assert.Error(t, err)
}

func TestPredicateNumericBucket(t *testing.T) {
	today := day(2024, 6, 10)
	records := []models.FollowupRecord{
		pendingOrderRec("C1", "Alpha Jewels", "S1", 10, nil),
		pendingOrderRec("C2", "Beta Gems", "S1", 60, nil),
		pendingOrderRec("C3", "Gamma Gold", "S2", 600, nil),
	}

	bucket, err := ParseRangeFilter("pendingPcs", "51-100")
	require.NoError(t, err)
	pred := FilterSet{NumericBucket: bucket}.Predicate(today)

	var kept []string
	for _, r := range records {
		if pred(r) {
			kept = append(kept, r.Base().ClientCode)
		}
	}
	assert.Equal(t, []string{"C2"}, kept)
}

func TestPredicateDaysSinceBucket(t *testing.T) {
	today := day(2024, 6, 10)
	records := []models.FollowupRecord{
		pendingOrderRec("C1", "Alpha", "S1", 5, datePtr(day(2024, 6, 9))),
		pendingOrderRec("C2", "Beta", "S1", 5, datePtr(day(2024, 5, 1))),
		pendingOrderRec("C3", "Gamma", "S1", 5, nil),
	}

	bucket, err := ParseRangeFilter("daysSince", "30-90")
	require.NoError(t, err)
	pred := FilterSet{NumericBucket: bucket}.Predicate(today)

	assert.False(t, pred(records[0]))
	assert.True(t, pred(records[1]))
	// records without the underlying date never match a bucket
	assert.False(t, pred(records[2]))
}

func TestPredicateComposition(t *testing.T) {
	today := day(2024, 6, 10)
	r := pendingOrderRec("C2", "Beta Gems", "S1", 60, datePtr(day(2024, 5, 1)))

	f := FilterSet{
		SalesExecCode: "S1",
		Search:        "beta",
		Status:        models.StatusPending,
		DateRange:     &DateRange{From: day(2024, 4, 1), To: day(2024, 5, 31)},
	}

	pred := f.Predicate(today)

	// applying the predicate repeatedly keeps the same answer
	assert.True(t, pred(r))
	assert.True(t, pred(r))

	// each clause alone also admits the record, so clause order cannot matter
	assert.True(t, FilterSet{SalesExecCode: "S1"}.Predicate(today)(r))
	assert.True(t, FilterSet{Search: "beta"}.Predicate(today)(r))
	assert.True(t, FilterSet{Status: models.StatusPending}.Predicate(today)(r))

	f.SalesExecCode = "S9"
	assert.False(t, f.Predicate(today)(r))
}

func TestPredicateSearchMatchesCodeOrName(t *testing.T) {
	today := day(2024, 6, 10)
	r := pendingOrderRec("JW-77", "Sunrise Jewellers", "S1", 1, nil)

	assert.True(t, FilterSet{Search: "sunrise"}.Predicate(today)(r))
	assert.True(t, FilterSet{Search: "jw-77"}.Predicate(today)(r))
	assert.False(t, FilterSet{Search: "moonlight"}.Predicate(today)(r))
}

func TestQueryNumericBucket(t *testing.T) {
	// computed field: no stored column, nothing to push down
	bucket, err := ParseRangeFilter("daysSince", "30-90")
	require.NoError(t, err)
	query := FilterSet{SalesExecCode: "S1", NumericBucket: bucket}.Query("orderDate")
	assert.Equal(t, "S1", query["salesExecCode"])
	assert.NotContains(t, query, "daysSince")
	assert.Len(t, query, 1)

	// stored field: becomes a range clause
	bucket, err = ParseRangeFilter("pendingPcs", "51-100")
	require.NoError(t, err)
	query = FilterSet{NumericBucket: bucket}.Query("orderDate")
	assert.Equal(t, bson.M{"$gte": 51.0, "$lte": 100.0}, query["pendingPcs"])

	// open-ended buckets carry no upper bound
	bucket, err = ParseRangeFilter("totalNetWt", "500+")
	require.NoError(t, err)
	query = FilterSet{NumericBucket: bucket}.Query("")
	assert.Equal(t, bson.M{"$gte": 500.0}, query["totalNetWt"])
}

func TestStoredBucketNarrowsListQuery(t *testing.T) {
	today := day(2024, 6, 10)
	records := []models.FollowupRecord{
		pendingOrderRec("C1", "Alpha", "S1", 10, nil),
		pendingOrderRec("C2", "Beta", "S1", 60, nil),
		pendingOrderRec("C3", "Gamma", "S1", 600, nil),
	}

	bucket, err := ParseRangeFilter("pendingPcs", "51-100")
	require.NoError(t, err)
	f := FilterSet{NumericBucket: bucket}
	params := PageParams{Page: 1, Size: 10}

	// a stored-field bucket stays on the server-paged path and the query
	// itself must carry the narrowing, since no predicate runs there
	assert.False(t, NeedsClientPaging(params, f))
	assert.Equal(t, bson.M{"$gte": 51.0, "$lte": 100.0}, f.Query("orderDate")["pendingPcs"])

	// the predicate agrees with the query on the same rows
	pred := f.Predicate(today)
	var kept []string
	for _, r := range records {
		if pred(r) {
			kept = append(kept, r.Base().ClientCode)
		}
	}
	assert.Equal(t, []string{"C2"}, kept)
}

func TestQueryStatus(t *testing.T) {
	q := FilterSet{Status: models.StatusCompleted}.Query("")
	assert.Equal(t, models.StatusCompleted, q["status"])

	q = FilterSet{Status: models.StatusPending}.Query("")
	assert.Equal(t, bson.M{"$ne": models.StatusCompleted}, q["status"])
}

func TestQueryDateRange(t *testing.T) {
	f := FilterSet{DateRange: &DateRange{From: day(2024, 5, 1), To: day(2024, 5, 31)}}

	q := f.Query("orderDate")
	rangeQ, ok := q["orderDate"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, day(2024, 5, 1), rangeQ["$gte"])
	assert.Equal(t, day(2024, 5, 31).Add(24*time.Hour-time.Second), rangeQ["$lte"])

	// no date field means the clause cannot be pushed to the database
	q = f.Query("")
	assert.Empty(t, q)
}
