package service

import (
	"sort"
	"time"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

// FetchAllCap bounds the unpaged fetch that backs client-side sorting.
const FetchAllCap = 10000

// PageParams are the paging and sorting inputs of a list request.
type PageParams struct {
	Page      int64
	Size      int64
	SortBy    string
	SortOrder string
}

// Descending reports whether the requested order is descending.
func (p PageParams) Descending() bool {
	return p.SortOrder == "desc"
}

// PageResult is one page of records plus totals the caller can trust.
type PageResult struct {
	Items      []models.FollowupRecord
	TotalItems int64
	TotalPages int64
	Page       int64
}

// Paging says where pagination happened. ServerPaged trusts backend totals;
// ClientPaged carries the full filtered row set and derives totals from it.
type Paging interface {
	paging()
}

// ServerPaged marks a page produced by database skip/limit.
type ServerPaged struct {
	TotalItems int64
}

// ClientPaged marks a page sliced from an in-memory row set.
type ClientPaged struct {
	AllRows []models.FollowupRecord
}

func (ServerPaged) paging() {}
func (ClientPaged) paging() {}

// manualSortColumns are computed client-side from a date and have no stored
// column the database could sort by.
var manualSortColumns = map[string]bool{
	"noOrderSince":      true,
	"daysPending":       true,
	"daysSinceOrder":    true,
	"daysSinceFollowUp": true,
}

// IsManualSort reports whether the column must be sorted in memory.
func IsManualSort(sortBy string) bool {
	return manualSortColumns[sortBy]
}

// NeedsClientPaging decides the paging mode for a request. Manual sort
// columns and computed-field bucket filters both force the full-fetch path.
func NeedsClientPaging(p PageParams, f FilterSet) bool {
	if IsManualSort(p.SortBy) {
		return true
	}
	return f.NumericBucket != nil && f.NumericBucket.Field == "daysSince"
}

// sortKey derives the numeric key for a manual sort column. The second
// return is false when the record lacks the underlying date; such records
// sort after all dated ones regardless of direction.
func sortKey(sortBy string, r models.FollowupRecord, today time.Time) (float64, bool) {
	switch sortBy {
	case "daysSinceFollowUp":
		last := r.Base().LastFollowUpDate
		if last == nil {
			return 0, false
		}
		return float64(DaysSince(*last, today)), true
	default:
		ref := r.ReferenceDate()
		if ref == nil {
			return 0, false
		}
		return float64(DaysSince(*ref, today)), true
	}
}

// TotalPages computes the page count for a total and page size.
func TotalPages(totalItems, size int64) int64 {
	if size <= 0 {
		return 0
	}
	return (totalItems + size - 1) / size
}

// PaginateClient sorts the full filtered row set by the derived key and
// slices the requested page. Totals come from the in-memory length, never
// from backend pagination metadata. A page past the end resets to page 1 so
// a sort-mode switch cannot strand the caller.
func PaginateClient(rows []models.FollowupRecord, p PageParams, today time.Time) PageResult {
	sorted := make([]models.FollowupRecord, len(rows))
	copy(sorted, rows)

	// non-manual columns arrive already sorted by the database; only the
	// computed columns are sorted here
	if IsManualSort(p.SortBy) {
		desc := p.Descending()
		sort.SliceStable(sorted, func(i, j int) bool {
			ki, oki := sortKey(p.SortBy, sorted[i], today)
			kj, okj := sortKey(p.SortBy, sorted[j], today)
			if oki != okj {
				return oki // undated records always sink to the end
			}
			if !oki {
				return false
			}
			if desc {
				return ki > kj
			}
			return ki < kj
		})
	}

	total := int64(len(sorted))
	page, size := p.Page, p.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	if (page-1)*size >= total && total > 0 {
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	return PageResult{
		Items:      sorted[start:end],
		TotalItems: total,
		TotalPages: TotalPages(total, size),
		Page:       page,
	}
}

// Paginate resolves a Paging value into a PageResult.
func Paginate(paging Paging, pageItems []models.FollowupRecord, p PageParams, today time.Time) PageResult {
	switch pg := paging.(type) {
	case ClientPaged:
		return PaginateClient(pg.AllRows, p, today)
	case ServerPaged:
		page := p.Page
		if page < 1 {
			page = 1
		}
		return PageResult{
			Items:      pageItems,
			TotalItems: pg.TotalItems,
			TotalPages: TotalPages(pg.TotalItems, p.Size),
			Page:       page,
		}
	default:
		return PageResult{Items: pageItems}
	}
}
