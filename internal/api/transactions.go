package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/checkturnitin/adminctl/internal/models"
)

// Each payment gateway keeps its own transaction shape, list filters and
// recheck payload; only the envelope fields line up.

type FonepayFilter struct {
	DateRangeFilter
	PRN string
	UID string
}

type FonepayTransactionList struct {
	Transactions      []models.FonepayTransaction `json:"transactionsData"`
	TotalPages        int                         `json:"totalPages"`
	TotalTransactions int                         `json:"totalTransactions"`
}

func (c *Client) ListFonepayTransactions(ctx context.Context, page, limit int, filter FonepayFilter) (*FonepayTransactionList, error) {
	query := pageQuery(page, limit)
	filter.apply(query)
	if filter.PRN != "" {
		query["prn"] = filter.PRN
	}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}

	var out FonepayTransactionList
	err := c.get(ctx, "/admin/fonepay-transactions", query, &out, "Failed to fetch Fonepay transactions. Please try again.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecheckFonepay asks the server to re-verify a charge against the gateway
// and returns the server's outcome message.
func (c *Client) RecheckFonepay(ctx context.Context, prn string) (string, error) {
	body := map[string]string{"prn": prn}
	var out struct {
		Message string `json:"message"`
	}
	err := c.send(ctx, resty.MethodPost, "/admin/fonepay-recheck-transaction", body, &out,
		"Failed to recheck Fonepay transaction. Please try again.")
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

type IMEFilter struct {
	DateRangeFilter
	RefID   string
	TokenID string
}

type IMETransactionList struct {
	Transactions      []models.IMETransaction `json:"transactionsData"`
	TotalPages        int                     `json:"totalPages"`
	TotalTransactions int                     `json:"totalTransactions"`
}

func (c *Client) ListIMETransactions(ctx context.Context, page, limit int, filter IMEFilter) (*IMETransactionList, error) {
	query := pageQuery(page, limit)
	filter.apply(query)
	if filter.RefID != "" {
		query["refId"] = filter.RefID
	}
	if filter.TokenID != "" {
		query["tokenId"] = filter.TokenID
	}

	var out IMETransactionList
	err := c.get(ctx, "/admin/ime-transactions", query, &out, "Failed to fetch IME Pay transactions. Please try again.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RecheckIME(ctx context.Context, refID, tokenID string) (string, error) {
	// field casing is the gateway's, passed through verbatim
	body := map[string]string{"RefId": refID, "TokenId": tokenID}
	var out struct {
		Message string `json:"message"`
	}
	err := c.send(ctx, resty.MethodPost, "/admin/ime-recheck-transaction", body, &out,
		"Failed to recheck IME Pay transaction. Please try again.")
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

type PaddleFilter struct {
	DateRangeFilter
	Status string
}

type PaddleTransactionList struct {
	Transactions      []models.PaddleTransaction `json:"transactionsData"`
	TotalPages        int                        `json:"totalPages"`
	TotalTransactions int                        `json:"totalTransactions"`
}

func (c *Client) ListPaddleTransactions(ctx context.Context, page, limit int, filter PaddleFilter) (*PaddleTransactionList, error) {
	query := pageQuery(page, limit)
	filter.apply(query)
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	var out PaddleTransactionList
	err := c.get(ctx, "/admin/paddle-transactions", query, &out, "Failed to fetch Paddle transactions. Please try again.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RecheckPaddle(ctx context.Context, paddleTransactionID string) (string, error) {
	body := map[string]string{"paddleTransactionId": paddleTransactionID}
	var out struct {
		Message string `json:"message"`
	}
	err := c.send(ctx, resty.MethodPost, "/admin/paddle-recheck-transaction", body, &out,
		"Failed to recheck Paddle transaction. Please try again.")
	if err != nil {
		return "", err
	}
	return out.Message, nil
}
