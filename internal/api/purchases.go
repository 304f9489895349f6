package api

import (
	"context"
	"strconv"

	"github.com/checkturnitin/adminctl/internal/models"
)

// DateRangeFilter narrows list endpoints by creation date and user email.
// Empty fields are omitted from the query.
type DateRangeFilter struct {
	StartDate string
	EndDate   string
	Email     string
}

func (f DateRangeFilter) apply(query map[string]string) {
	if f.StartDate != "" {
		query["startDate"] = f.StartDate
	}
	if f.EndDate != "" {
		query["endDate"] = f.EndDate
	}
	if f.Email != "" {
		query["email"] = f.Email
	}
}

func pageQuery(page, limit int) map[string]string {
	return map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
}

type PurchaseList struct {
	Purchases      []models.Purchase `json:"purchasesData"`
	TotalPages     int               `json:"totalPages"`
	TotalPurchases int               `json:"totalPurchases"`
}

func (c *Client) ListPurchases(ctx context.Context, page, limit int, filter DateRangeFilter) (*PurchaseList, error) {
	query := pageQuery(page, limit)
	filter.apply(query)

	var out PurchaseList
	err := c.get(ctx, "/admin/purchases", query, &out, "Failed to fetch purchases. Please try again.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
