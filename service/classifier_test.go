package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestDaysSince(t *testing.T) {
	today := day(2024, 6, 10)

	assert.Equal(t, 0, DaysSince(day(2024, 6, 10), today))
	assert.Equal(t, 2, DaysSince(day(2024, 6, 8), today))
	assert.Equal(t, -3, DaysSince(day(2024, 6, 13), today))

	// embedded clock times must not change the day diff
	late := time.Date(2024, 6, 8, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 2, DaysSince(late, today))
}

func TestClassify(t *testing.T) {
	today := day(2024, 6, 10)

	tests := []struct {
		name    string
		dueDate *time.Time
		status  models.Status
		want    Bucket
	}{
		{"completed wins over overdue", datePtr(day(2024, 6, 1)), models.StatusCompleted, BucketCompleted},
		{"no date", nil, models.StatusPending, BucketNoDate},
		{"due today is upcoming", datePtr(day(2024, 6, 10)), models.StatusPending, BucketUpcoming},
		{"future date is upcoming", datePtr(day(2024, 7, 1)), models.StatusPending, BucketUpcoming},
		{"one day overdue", datePtr(day(2024, 6, 9)), models.StatusPending, BucketOverdue1to2},
		{"two days overdue", datePtr(day(2024, 6, 8)), models.StatusPending, BucketOverdue1to2},
		{"three days overdue", datePtr(day(2024, 6, 7)), models.StatusPending, BucketOverdue3to4},
		{"four days overdue", datePtr(day(2024, 6, 6)), models.StatusPending, BucketOverdue3to4},
		{"five days overdue", datePtr(day(2024, 6, 5)), models.StatusPending, BucketOverdue5Plus},
		{"long overdue", datePtr(day(2023, 1, 1)), models.StatusPending, BucketOverdue5Plus},
		{"blank status treated as pending", datePtr(day(2024, 6, 8)), "", BucketOverdue1to2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.dueDate, tt.status, today))
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2024, 6, 8, 18, 30, 0, 0, time.UTC)
	morning := time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, BucketOverdue1to2, Classify(&due, models.StatusPending, morning))
	assert.Equal(t, BucketOverdue1to2, Classify(&due, models.StatusPending, evening))
}

func TestClassifyDeterministic(t *testing.T) {
	today := day(2024, 6, 10)
	due := datePtr(day(2024, 6, 4))

	first := Classify(due, models.StatusPending, today)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(due, models.StatusPending, today))
	}
}

func TestClassifyRecord(t *testing.T) {
	today := day(2024, 6, 10)

	r := &models.NewOrder{}
	r.Status = models.StatusPending
	r.NextFollowUpDate = datePtr(day(2024, 6, 3))

	assert.Equal(t, BucketOverdue5Plus, ClassifyRecord(r, today))

	r.Status = models.StatusCompleted
	assert.Equal(t, BucketCompleted, ClassifyRecord(r, today))
}
