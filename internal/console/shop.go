package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/checkturnitin/adminctl/internal/api"
)

func (c *Console) ShopItems(ctx context.Context) error {
	items, err := c.client.ListShopItems(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Shop Items")
	if len(items) == 0 {
		c.placeholder("shop items")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		state := "disabled"
		if item.Enable {
			state = "enabled"
		}
		rows = append(rows, []string{
			item.ID, item.Title,
			strconv.Itoa(item.CreditLimit),
			item.Country, item.Currency,
			item.Price.String(),
			state,
			strings.Join(item.Features, "; "),
		})
	}
	c.table([]string{"ID", "Title", "Credits", "Country", "Currency", "Price", "State", "Features"}, rows)
	return nil
}

// validateShopItem enforces the form rules: title and positive numbers are
// required, and USD items must carry a Paddle product ID.
func validateShopItem(req api.ShopItemRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if req.CreditLimit <= 0 {
		return fmt.Errorf("credit limit must be greater than zero")
	}
	if !req.Price.IsPositive() {
		return fmt.Errorf("price must be greater than zero")
	}
	if req.Currency == "USD" && strings.TrimSpace(req.PaddleProductID) == "" {
		return fmt.Errorf("USD items need a Paddle product ID")
	}
	return nil
}

func (c *Console) CreateShopItem(ctx context.Context, req api.ShopItemRequest) error {
	if err := validateShopItem(req); err != nil {
		c.notifyError(err)
		return err
	}

	if err := c.client.CreateShopItem(ctx, req); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Item created successfully.")
	return c.ShopItems(ctx)
}

func (c *Console) UpdateShopItem(ctx context.Context, itemID string, req api.ShopItemRequest) error {
	if err := validateShopItem(req); err != nil {
		c.notifyError(err)
		return err
	}

	if err := c.client.UpdateShopItem(ctx, itemID, req); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Item updated successfully.")
	return c.ShopItems(ctx)
}

func (c *Console) ToggleShopItem(ctx context.Context, itemID string) error {
	if err := c.client.ToggleShopItem(ctx, itemID); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Item status toggled.")
	return c.ShopItems(ctx)
}
