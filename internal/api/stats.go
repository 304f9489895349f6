package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/checkturnitin/adminctl/internal/models"
)

// StatsRange selects a custom reporting window; zero value means the
// server's default (yearly) view.
type StatsRange struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (r StatsRange) custom() bool {
	return r.StartDate != "" && r.EndDate != ""
}

// GetUserStats fetches the default window with GET and a custom range with
// POST, the two call shapes the stats pages used.
func (c *Client) GetUserStats(ctx context.Context, r StatsRange) (*models.UserStats, error) {
	var out models.UserStats
	var err error
	if r.custom() {
		err = c.send(ctx, resty.MethodPost, "/admin/stats/users", r, &out, "Failed to fetch user stats")
	} else {
		err = c.get(ctx, "/admin/stats/users", nil, &out, "Failed to fetch user stats")
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DownloadUserStats(ctx context.Context, r StatsRange) ([]byte, error) {
	return c.download(ctx, resty.MethodPost, "/admin/stats/users/download", nil, r, "Failed to download user stats")
}

func (c *Client) GetPurchaseStats(ctx context.Context, r StatsRange) (*models.PurchaseStats, error) {
	var out models.PurchaseStats
	var err error
	if r.custom() {
		err = c.send(ctx, resty.MethodPost, "/admin/stats/purchases", r, &out, "Failed to fetch purchase stats")
	} else {
		err = c.get(ctx, "/admin/stats/purchases", nil, &out, "Failed to fetch purchase stats")
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DownloadPurchaseStats(ctx context.Context, r StatsRange) ([]byte, error) {
	return c.download(ctx, resty.MethodPost, "/admin/stats/purchases/download", nil, r, "Failed to download purchase stats")
}

func (c *Client) GetCreditStats(ctx context.Context) (*models.CreditStats, error) {
	var out models.CreditStats
	if err := c.get(ctx, "/admin/stats/credits", nil, &out, "Failed to fetch credit stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateCreditStats asks the server to cross-check ledger totals against
// balances and returns its verdict message.
func (c *Client) ValidateCreditStats(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.get(ctx, "/admin/stats/credits/validation", nil, &out, "Failed to validate credit stats")
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

// DownloadCreditStats exports either "balances" or "transactions".
func (c *Client) DownloadCreditStats(ctx context.Context, kind string) ([]byte, error) {
	return c.download(ctx, resty.MethodGet, "/admin/stats/credits/download/"+kind, nil, nil, "Failed to download "+kind)
}
