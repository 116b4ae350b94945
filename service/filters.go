package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

// DateRange is an inclusive day-granularity range.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NumericBucket narrows a numeric field (stored or computed) to [Min, Max].
type NumericBucket struct {
	Field string
	Min   float64
	Max   float64
}

// FilterSet is the full set of optional list filters. Zero-valued fields are
// no-ops; present fields narrow the set via logical AND.
type FilterSet struct {
	SalesExecCode string
	ClientCode    string
	Search        string
	Status        models.Status
	DateRange     *DateRange
	NumericBucket *NumericBucket
}

// numericFilterFields are the fields a range filter may address. daysSince
// is computed from the variant's reference date; the rest are stored columns.
var numericFilterFields = map[string]bool{
	"daysSince":     true,
	"pendingPcs":    true,
	"totalOrderPcs": true,
	"totalNetWt":    true,
}

// ParseRangeFilter parses a bucket expression like "51-100" or "500+".
func ParseRangeFilter(field, expr string) (*NumericBucket, error) {
	expr = strings.TrimSpace(expr)
	if field == "" || expr == "" || expr == "all" {
		return nil, nil
	}
	if !numericFilterFields[field] {
		return nil, fmt.Errorf("unknown range field %q", field)
	}

	if strings.HasSuffix(expr, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(expr, "+"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range filter %q", expr)
		}
		return &NumericBucket{Field: field, Min: min, Max: math.MaxFloat64}, nil
	}

	parts := strings.SplitN(expr, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range filter %q", expr)
	}
	min, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || min > max {
		return nil, fmt.Errorf("invalid range filter %q", expr)
	}
	return &NumericBucket{Field: field, Min: min, Max: max}, nil
}

// NumericField extracts a filterable numeric value from a record. The
// "daysSince" field is computed from the variant's reference date.
func NumericField(r models.FollowupRecord, field string, today time.Time) (float64, bool) {
	switch field {
	case "daysSince":
		ref := r.ReferenceDate()
		if ref == nil {
			return 0, false
		}
		return float64(DaysSince(*ref, today)), true
	case "pendingPcs":
		if po, ok := r.(*models.PendingOrder); ok {
			return float64(po.PendingPcs), true
		}
	case "totalOrderPcs":
		if po, ok := r.(*models.PendingOrder); ok {
			return float64(po.TotalOrderPcs), true
		}
	case "totalNetWt":
		if pm, ok := r.(*models.PendingMaterial); ok {
			return pm.TotalNetWt, true
		}
	}
	return 0, false
}

// Predicate composes the present filters into one AND predicate. Composition
// is commutative and idempotent: each clause inspects the record alone.
func (f FilterSet) Predicate(today time.Time) func(models.FollowupRecord) bool {
	return func(r models.FollowupRecord) bool {
		base := r.Base()

		if f.SalesExecCode != "" && f.SalesExecCode != "all" &&
			base.SalesExecCode != f.SalesExecCode {
			return false
		}
		if f.ClientCode != "" && f.ClientCode != "all" &&
			base.ClientCode != f.ClientCode {
			return false
		}
		if f.Status != "" && models.Status(f.Status) != models.NormalizeStatus(base.Status) {
			return false
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(base.ClientName), needle) &&
				!strings.Contains(strings.ToLower(base.ClientCode), needle) {
				return false
			}
		}
		if f.DateRange != nil {
			ref := r.ReferenceDate()
			if ref == nil {
				return false
			}
			day := TruncateToUTCDay(*ref)
			if day.Before(TruncateToUTCDay(f.DateRange.From)) ||
				day.After(TruncateToUTCDay(f.DateRange.To)) {
				return false
			}
		}
		if f.NumericBucket != nil {
			v, ok := NumericField(r, f.NumericBucket.Field, today)
			if !ok || v < f.NumericBucket.Min || v > f.NumericBucket.Max {
				return false
			}
		}

		return true
	}
}

// Query translates the filters into the equivalent mongo query. dateField is
// the variant's reference-date bson field. Stored-field buckets become a
// range clause; a "daysSince" bucket has no stored column, so it stays
// in-memory via Predicate and the coordinator switches to client paging.
func (f FilterSet) Query(dateField string) bson.M {
	query := bson.M{}

	if f.SalesExecCode != "" && f.SalesExecCode != "all" {
		query["salesExecCode"] = f.SalesExecCode
	}
	if f.ClientCode != "" && f.ClientCode != "all" {
		query["clientCode"] = f.ClientCode
	}
	if f.Status != "" {
		if models.Status(f.Status) == models.StatusCompleted {
			query["status"] = models.StatusCompleted
		} else {
			// absent status defaults to pending
			query["status"] = bson.M{"$ne": models.StatusCompleted}
		}
	}
	if f.Search != "" {
		query["$or"] = []bson.M{
			{"clientName": bson.M{"$regex": f.Search, "$options": "i"}},
			{"clientCode": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}
	if f.DateRange != nil && dateField != "" {
		from := TruncateToUTCDay(f.DateRange.From)
		to := TruncateToUTCDay(f.DateRange.To).Add(24*time.Hour - time.Second)
		query[dateField] = bson.M{"$gte": from, "$lte": to}
	}
	if f.NumericBucket != nil && f.NumericBucket.Field != "daysSince" {
		rangeQ := bson.M{"$gte": f.NumericBucket.Min}
		if f.NumericBucket.Max != math.MaxFloat64 {
			rangeQ["$lte"] = f.NumericBucket.Max
		}
		query[f.NumericBucket.Field] = rangeQ
	}

	return query
}
