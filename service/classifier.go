package service

import (
	"time"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

// Bucket classifies how a follow-up stands relative to its due date.
type Bucket string

const (
	BucketCompleted    Bucket = "completed"
	BucketUpcoming     Bucket = "upcoming"
	BucketOverdue1to2  Bucket = "overdue-1-2"
	BucketOverdue3to4  Bucket = "overdue-3-4"
	BucketOverdue5Plus Bucket = "overdue-5-plus"
	BucketNoDate       Bucket = "no-date"
)

// AllBuckets lists the buckets in report order.
var AllBuckets = []Bucket{
	BucketUpcoming,
	BucketOverdue1to2,
	BucketOverdue3to4,
	BucketOverdue5Plus,
	BucketNoDate,
	BucketCompleted,
}

// TruncateToUTCDay normalizes a time to UTC midnight. Every day-granularity
// comparison in the system goes through this, so two dates with differing
// embedded times can never land in different buckets.
func TruncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysSince returns the whole days elapsed from a date to today, both
// normalized to UTC midnight. Negative values mean the date is in the future.
func DaysSince(from time.Time, today time.Time) int {
	delta := TruncateToUTCDay(today).Sub(TruncateToUTCDay(from))
	return int(delta / (24 * time.Hour))
}

// Classify maps a follow-up's due date and status into exactly one bucket.
func Classify(dueDate *time.Time, status models.Status, today time.Time) Bucket {
	if models.NormalizeStatus(status) == models.StatusCompleted {
		return BucketCompleted
	}
	if dueDate == nil {
		return BucketNoDate
	}

	daysDiff := DaysSince(*dueDate, today)
	switch {
	case daysDiff <= 0:
		return BucketUpcoming
	case daysDiff <= 2:
		return BucketOverdue1to2
	case daysDiff <= 4:
		return BucketOverdue3to4
	default:
		return BucketOverdue5Plus
	}
}

// ClassifyRecord classifies a follow-up record by its mirrored follow-up state.
func ClassifyRecord(r models.FollowupRecord, today time.Time) Bucket {
	base := r.Base()
	return Classify(base.NextFollowUpDate, base.Status, today)
}
