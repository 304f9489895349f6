package listview

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type purchase struct {
	Amount    decimal.Decimal
	CreatedAt string
}

func purchaseView(pageSize int, items []purchase) *View[purchase] {
	v := New(pageSize, "date", map[string]Key[purchase]{
		"date":   DateKey(func(p purchase) string { return p.CreatedAt }),
		"amount": func(p purchase) float64 { return p.Amount.InexactFloat64() },
	})
	v.SetItems(items)
	return v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDefaultSortDateDesc(t *testing.T) {
	v := purchaseView(5, []purchase{
		{Amount: dec("100"), CreatedAt: "2024-01-01"},
		{Amount: dec("50"), CreatedAt: "2024-02-01"},
	})

	page := v.Page()
	require.Len(t, page, 2)
	require.Equal(t, "2024-02-01", page[0].CreatedAt)
	require.Equal(t, "2024-01-01", page[1].CreatedAt)

	v.ToggleSort("amount")
	page = v.Page()
	require.True(t, page[0].Amount.Equal(dec("100")))
	require.True(t, page[1].Amount.Equal(dec("50")))
}

func TestToggleSortSameFieldFlipsAndRestores(t *testing.T) {
	v := purchaseView(5, []purchase{
		{Amount: dec("1"), CreatedAt: "2024-01-01T00:00:00Z"},
		{Amount: dec("2"), CreatedAt: "2024-01-02T00:00:00Z"},
		{Amount: dec("3"), CreatedAt: "2024-01-03T00:00:00Z"},
	})
	original := v.Page()

	v.ToggleSort("date")
	require.Equal(t, Asc, v.SortOrder())
	require.Equal(t, "2024-01-01T00:00:00Z", v.Page()[0].CreatedAt)

	v.ToggleSort("date")
	require.Equal(t, Desc, v.SortOrder())
	require.Equal(t, original, v.Page())
}

func TestToggleSortNewFieldResetsOrderAndPage(t *testing.T) {
	items := make([]purchase, 12)
	for i := range items {
		items[i] = purchase{Amount: dec("1"), CreatedAt: "2024-01-01"}
	}
	v := purchaseView(5, items)
	v.SetPage(3)

	v.ToggleSort("amount")
	require.Equal(t, "amount", v.SortBy())
	require.Equal(t, Desc, v.SortOrder())
	require.Equal(t, 1, v.PageNum())

	// unknown field is a no-op
	v.ToggleSort("email")
	require.Equal(t, "amount", v.SortBy())
}

func TestPaginationBoundaries(t *testing.T) {
	items := make([]purchase, 11)
	v := purchaseView(5, items)

	require.Equal(t, 3, v.TotalPages())
	require.False(t, v.HasPrev())
	require.True(t, v.HasNext())

	v.Prev() // disabled at page 1
	require.Equal(t, 1, v.PageNum())

	v.Next()
	v.Next()
	require.Equal(t, 3, v.PageNum())
	require.False(t, v.HasNext())
	require.Len(t, v.Page(), 1)

	v.Next() // disabled at the last page
	require.Equal(t, 3, v.PageNum())

	v.SetPage(99)
	require.Equal(t, 3, v.PageNum())
}

func TestEmptyCollection(t *testing.T) {
	v := purchaseView(5, nil)

	require.True(t, v.Empty())
	require.Equal(t, 1, v.TotalPages())
	require.False(t, v.HasPrev())
	require.False(t, v.HasNext())
	require.Empty(t, v.Page())
}

func TestStalePageAfterShrink(t *testing.T) {
	items := make([]purchase, 11)
	v := purchaseView(5, items)
	v.SetPage(3)

	v.SetItems(items[:5])
	// cursor is intentionally kept; the derived page is just empty
	require.Equal(t, 3, v.PageNum())
	require.Empty(t, v.Page())
}
