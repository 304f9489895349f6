package api

import (
	"context"

	"github.com/checkturnitin/adminctl/internal/models"
)

type CreditTransactionFilter struct {
	DateRangeFilter
	Type string
}

type CreditTransactionList struct {
	Transactions      []models.CreditTransaction `json:"transactionsData"`
	TotalPages        int                        `json:"totalPages"`
	TotalTransactions int                        `json:"totalTransactions"`
	TodayUsage        []models.TodayUsage        `json:"todayUsage"`
	TopUsers          []models.TopUser           `json:"topUsers"`
}

func (c *Client) ListCreditTransactions(ctx context.Context, page, limit int, filter CreditTransactionFilter) (*CreditTransactionList, error) {
	query := pageQuery(page, limit)
	filter.apply(query)
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	var out CreditTransactionList
	err := c.get(ctx, "/admin/credit-transactions", query, &out, "Failed to fetch credit transactions. Please try again.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
