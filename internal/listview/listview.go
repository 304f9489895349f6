// Package listview implements the sortable, paginated list state shared by
// the purchases, transactions, credits, gift-card and staff views: a page
// cursor, a sort field and a sort direction over an in-memory collection,
// with the visible slice derived fresh on every render.
package listview

import (
	"sort"
	"time"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Key extracts a sortable numeric value from a record. Date-like fields
// map to epoch milliseconds, monetary fields to their numeric value.
type Key[T any] func(T) float64

// DateKey adapts a string timestamp field into a Key. Both RFC 3339 and
// plain yyyy-mm-dd values appear on the wire; anything unparseable sorts
// as the epoch.
func DateKey[T any](field func(T) string) Key[T] {
	return func(v T) float64 {
		s := field(v)
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if ts, err := time.Parse(layout, s); err == nil {
				return float64(ts.UnixMilli())
			}
		}
		return 0
	}
}

// View holds the list state for one page component. The zero value is not
// usable; construct with New.
type View[T any] struct {
	items    []T
	pageSize int
	page     int
	sortBy   string
	order    Order
	keys     map[string]Key[T]
}

// New builds a view with the given fixed page size and sortable fields.
// Initial state is page 1, sorted by defaultField descending.
func New[T any](pageSize int, defaultField string, keys map[string]Key[T]) *View[T] {
	return &View[T]{
		pageSize: pageSize,
		page:     1,
		sortBy:   defaultField,
		order:    Desc,
		keys:     keys,
	}
}

// SetItems replaces the collection. The page cursor is deliberately left
// alone: a re-fetch lands the user on the page they were reading.
func (v *View[T]) SetItems(items []T) {
	v.items = items
}

func (v *View[T]) Len() int       { return len(v.items) }
func (v *View[T]) Empty() bool    { return len(v.items) == 0 }
func (v *View[T]) PageNum() int   { return v.page }
func (v *View[T]) SortBy() string { return v.sortBy }
func (v *View[T]) SortOrder() Order { return v.order }

// TotalPages is ceil(len/pageSize), never less than one.
func (v *View[T]) TotalPages() int {
	pages := (len(v.items) + v.pageSize - 1) / v.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

func (v *View[T]) HasPrev() bool { return v.page > 1 }
func (v *View[T]) HasNext() bool { return v.page < v.TotalPages() }

// SetPage moves the cursor; out-of-range targets are ignored, matching the
// disabled Previous/Next controls at the boundaries.
func (v *View[T]) SetPage(page int) {
	if page < 1 || page > v.TotalPages() {
		return
	}
	v.page = page
}

func (v *View[T]) Next() { v.SetPage(v.page + 1) }
func (v *View[T]) Prev() { v.SetPage(v.page - 1) }

// ToggleSort flips the direction when field is already the sort key, and
// otherwise switches to the new field descending and returns to page one.
// Unknown fields are ignored.
func (v *View[T]) ToggleSort(field string) {
	if _, ok := v.keys[field]; !ok {
		return
	}
	if v.sortBy == field {
		if v.order == Desc {
			v.order = Asc
		} else {
			v.order = Desc
		}
		return
	}
	v.sortBy = field
	v.order = Desc
	v.page = 1
}

// Page derives the visible slice: clone, sort by the current key and
// direction, then cut the current window. Ties keep no particular order
// (the sort is unstable, no secondary key). A cursor beyond the last page
// of a shrunken collection yields an empty slice.
func (v *View[T]) Page() []T {
	sorted := make([]T, len(v.items))
	copy(sorted, v.items)

	if key, ok := v.keys[v.sortBy]; ok {
		sort.Slice(sorted, func(i, j int) bool {
			if v.order == Desc {
				return key(sorted[i]) > key(sorted[j])
			}
			return key(sorted[i]) < key(sorted[j])
		})
	}

	start := (v.page - 1) * v.pageSize
	if start >= len(sorted) {
		return nil
	}
	end := start + v.pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}
