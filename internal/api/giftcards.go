package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/checkturnitin/adminctl/internal/models"
)

type GiftCardFilter struct {
	Search string
	// Status filters active/inactive; Redeemed narrows to redeemed cards.
	// Both empty means all cards.
	Status   string
	Redeemed bool
}

type Pagination struct {
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasMore bool `json:"hasMore"`
}

type GiftCardList struct {
	Cards      []models.GiftCard `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

func (c *Client) ListGiftCards(ctx context.Context, page, limit int, filter GiftCardFilter) (*GiftCardList, error) {
	query := pageQuery(page, limit)
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Redeemed {
		query["isRedeemed"] = "true"
	}

	var out GiftCardList
	err := c.get(ctx, "/admin/giftcards", query, &out, "Failed to load gift cards")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type batchList struct {
	Batches []models.Batch `json:"data"`
}

func (c *Client) ListBatches(ctx context.Context, page, limit int) ([]models.Batch, error) {
	var out batchList
	err := c.get(ctx, "/admin/giftcards/batches", pageQuery(page, limit), &out, "Failed to load batches")
	if err != nil {
		return nil, err
	}
	return out.Batches, nil
}

type GenerateGiftCardsRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Count          int             `json:"count"`
	ValidityMonths int             `json:"validityMonths"`
	BatchNote      string          `json:"batchNote,omitempty"`
}

func (c *Client) GenerateGiftCards(ctx context.Context, req GenerateGiftCardsRequest) error {
	return c.send(ctx, resty.MethodPost, "/admin/giftcards/generate", req, nil, "Failed to generate gift cards")
}

func (c *Client) UpdateGiftCardStatus(ctx context.Context, cardID, status string) error {
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/admin/giftcards/%s/status", cardID)
	return c.send(ctx, resty.MethodPatch, path, body, nil, "Failed to update status")
}

func (c *Client) UpdateBatchStatus(ctx context.Context, batch int, status string) error {
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/admin/giftcards/batch/%d/status", batch)
	return c.send(ctx, resty.MethodPatch, path, body, nil, "Failed to update batch status")
}

// ExportBatch returns the batch's CSV as served.
func (c *Client) ExportBatch(ctx context.Context, batch int) ([]byte, error) {
	path := "/admin/giftcards/batch/" + strconv.Itoa(batch) + "/export"
	return c.download(ctx, resty.MethodGet, path, nil, nil, "Failed to export batch")
}
