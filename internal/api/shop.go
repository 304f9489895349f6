package api

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/checkturnitin/adminctl/internal/models"
)

func (c *Client) ListShopItems(ctx context.Context) ([]models.ShopItem, error) {
	var out []models.ShopItem
	if err := c.get(ctx, "/admin/shop", nil, &out, "Failed to fetch items"); err != nil {
		return nil, err
	}
	return out, nil
}

type ShopItemRequest struct {
	Enable          bool            `json:"enable,omitempty"`
	Title           string          `json:"title"`
	CreditLimit     int             `json:"creditLimit"`
	Country         string          `json:"country"`
	Currency        string          `json:"currency"`
	Price           decimal.Decimal `json:"price"`
	Features        []string        `json:"features"`
	PaddleProductID string          `json:"paddleProductId,omitempty"`
}

func (c *Client) CreateShopItem(ctx context.Context, req ShopItemRequest) error {
	return c.send(ctx, resty.MethodPost, "/admin/shop/create", req, nil, "Failed to create item")
}

func (c *Client) UpdateShopItem(ctx context.Context, itemID string, req ShopItemRequest) error {
	return c.send(ctx, resty.MethodPut, "/admin/shop/"+itemID, req, nil, "Failed to update item")
}

func (c *Client) ToggleShopItem(ctx context.Context, itemID string) error {
	return c.send(ctx, resty.MethodPatch, "/admin/shop/"+itemID+"/toggle", struct{}{}, nil, "Failed to toggle item status")
}
